package models

import (
	"gorm.io/gorm"
)

// EducationalContent is a publishable article or lesson. Unpublished rows are
// hidden from the public listing unless explicitly requested.
type EducationalContent struct {
	gorm.Model

	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Content         string `json:"content" gorm:"type:text"`
	Category        string `json:"category"`
	Duration        string `json:"duration"`
	DifficultyLevel string `json:"difficulty_level"`
	ImageURL        string `json:"image_url"`
	AuthorID        *uint  `json:"author_id"`
	Author          *User  `gorm:"foreignKey:AuthorID" json:"-"`
	IsPublished     bool   `json:"is_published"`
}

package models

import (
	"gorm.io/gorm"
)

// TrainingModule is a catalog course; per-member progress lives in MemberTraining.
type TrainingModule struct {
	gorm.Model

	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	DurationHours float64 `json:"duration_hours"`
	Category      string  `json:"category"`
	Level         string  `json:"level"` // "beginner", "intermediate", "advanced"
	Status        string  `json:"status" gorm:"default:active"`
}

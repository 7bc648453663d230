package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

type contentRow struct {
	models.EducationalContent
	AuthorName *string `json:"author_name"`
}

// ListContent returns published educational content with author names.
// ?all=true (admin screens) includes unpublished drafts.
func ListContent(c *gin.Context) {
	query := config.DB.Model(&models.EducationalContent{}).
		Select("educational_contents.*, users.full_name AS author_name").
		Joins("LEFT JOIN users ON users.id = educational_contents.author_id")

	if c.Query("all") != "true" {
		query = query.Where("educational_contents.is_published = ?", true)
	}

	var rows []contentRow
	if err := query.Order("educational_contents.created_at DESC").Find(&rows).Error; err != nil {
		logrus.WithError(err).Error("content: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetContent fetches one piece of content by ID.
func GetContent(c *gin.Context) {
	var rows []contentRow
	err := config.DB.Model(&models.EducationalContent{}).
		Select("educational_contents.*, users.full_name AS author_name").
		Joins("LEFT JOIN users ON users.id = educational_contents.author_id").
		Where("educational_contents.id = ?", c.Param("id")).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("content: get failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, rows[0])
}

type contentInput struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Content         string `json:"content"`
	Category        string `json:"category"`
	Duration        string `json:"duration"`
	DifficultyLevel string `json:"difficulty_level"`
	ImageURL        string `json:"image_url"`
	AuthorID        *uint  `json:"author_id"`
	IsPublished     bool   `json:"is_published"`
}

func CreateContent(c *gin.Context) {
	var input contentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content := models.EducationalContent{
		Title:           input.Title,
		Description:     input.Description,
		Content:         input.Content,
		Category:        input.Category,
		Duration:        input.Duration,
		DifficultyLevel: input.DifficultyLevel,
		ImageURL:        input.ImageURL,
		AuthorID:        input.AuthorID,
		IsPublished:     input.IsPublished,
	}
	if err := config.DB.Create(&content).Error; err != nil {
		logrus.WithError(err).Error("content: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, content)
}

// UpdateContent applies only the fields present in the payload; updated_at is
// bumped by the Save either way.
func UpdateContent(c *gin.Context) {
	var content models.EducationalContent
	if err := config.DB.First(&content, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		} else {
			logrus.WithError(err).Error("content: lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var input struct {
		Title           *string `json:"title"`
		Description     *string `json:"description"`
		Content         *string `json:"content"`
		Category        *string `json:"category"`
		Duration        *string `json:"duration"`
		DifficultyLevel *string `json:"difficulty_level"`
		ImageURL        *string `json:"image_url"`
		IsPublished     *bool   `json:"is_published"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		content.Title = *input.Title
	}
	if input.Description != nil {
		content.Description = *input.Description
	}
	if input.Content != nil {
		content.Content = *input.Content
	}
	if input.Category != nil {
		content.Category = *input.Category
	}
	if input.Duration != nil {
		content.Duration = *input.Duration
	}
	if input.DifficultyLevel != nil {
		content.DifficultyLevel = *input.DifficultyLevel
	}
	if input.ImageURL != nil {
		content.ImageURL = *input.ImageURL
	}
	if input.IsPublished != nil {
		content.IsPublished = *input.IsPublished
	}

	if err := config.DB.Save(&content).Error; err != nil {
		logrus.WithError(err).Error("content: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, content)
}

func DeleteContent(c *gin.Context) {
	var content models.EducationalContent
	if err := config.DB.First(&content, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}

	if err := config.DB.Delete(&content).Error; err != nil {
		logrus.WithError(err).Error("content: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

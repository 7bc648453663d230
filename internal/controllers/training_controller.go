package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

type trainingCatalogRow struct {
	ID                 uint       `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DurationHours      float64    `json:"duration_hours"`
	Category           string     `json:"category"`
	Level              string     `json:"level"`
	ProgressStatus     *string    `json:"progress_status"`
	ProgressPercentage *int       `json:"progress_percentage"`
	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
}

// MemberTrainingCatalog returns the active training catalog with the calling
// member's progress merged in.
func MemberTrainingCatalog(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	var modules []models.TrainingModule
	err := config.DB.Where("status = ?", "active").
		Order("created_at DESC").
		Find(&modules).Error
	if err != nil {
		logrus.WithError(err).Error("training: catalog lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Progress rows only exist once the member has started something.
	progress := map[uint]models.MemberTraining{}
	var member models.Member
	if err := config.DB.Where("user_id = ?", userID).First(&member).Error; err == nil {
		var records []models.MemberTraining
		if err := config.DB.Where("member_id = ?", member.ID).Find(&records).Error; err != nil {
			logrus.WithError(err).Error("training: progress lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		for _, record := range records {
			progress[record.TrainingID] = record
		}
	}

	rows := make([]trainingCatalogRow, 0, len(modules))
	for _, module := range modules {
		row := trainingCatalogRow{
			ID:            module.ID,
			Title:         module.Title,
			Description:   module.Description,
			DurationHours: module.DurationHours,
			Category:      module.Category,
			Level:         module.Level,
		}
		if record, ok := progress[module.ID]; ok {
			row.ProgressStatus = &record.Status
			row.ProgressPercentage = &record.ProgressPercentage
			row.StartedAt = record.StartedAt
			row.CompletedAt = record.CompletedAt
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, rows)
}

// UpdateMemberTraining starts or completes a training module for the member
// linked to userId.
//
// "start" is an upsert that forces in_progress and refreshes started_at, even
// on an already-completed record, so restarting a course resets it.
// "complete" only touches an existing record.
func UpdateMemberTraining(c *gin.Context) {
	var body struct {
		UserID     uint   `json:"userId" binding:"required"`
		TrainingID uint   `json:"trainingId" binding:"required"`
		Action     string `json:"action" binding:"required,oneof=start complete"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.Member
	if err := config.DB.Where("user_id = ?", body.UserID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	now := time.Now()

	switch body.Action {
	case "start":
		record := models.MemberTraining{
			MemberID:   member.ID,
			TrainingID: body.TrainingID,
			Status:     "in_progress",
			StartedAt:  &now,
		}
		err := config.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "member_id"}, {Name: "training_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "started_at", "updated_at"}),
		}).Create(&record).Error
		if err != nil {
			logrus.WithError(err).Error("training: start failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	case "complete":
		err := config.DB.Model(&models.MemberTraining{}).
			Where("member_id = ? AND training_id = ?", member.ID, body.TrainingID).
			Updates(map[string]interface{}{
				"status":              "completed",
				"progress_percentage": 100,
				"completed_at":        now,
			}).Error
		if err != nil {
			logrus.WithError(err).Error("training: complete failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

type announcementRow struct {
	models.Announcement
	CreatedByName   string  `json:"created_by_name"`
	TargetGroupName *string `json:"target_group_name"`
}

// AdminListAnnouncements lists all announcements with creator and target
// group names, newest first.
func AdminListAnnouncements(c *gin.Context) {
	var rows []announcementRow
	err := config.DB.Model(&models.Announcement{}).
		Select("announcements.*, users.full_name AS created_by_name, groups.name AS target_group_name").
		Joins("JOIN users ON users.id = announcements.created_by").
		Joins("LEFT JOIN groups ON groups.id = announcements.target_group_id").
		Order("announcements.created_at DESC").
		Find(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("announcements: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type announcementInput struct {
	Title          string `json:"title" binding:"required"`
	Content        string `json:"content" binding:"required"`
	Priority       string `json:"priority"`
	TargetAudience string `json:"targetAudience"`
	TargetGroupID  *uint  `json:"targetGroupId"`
	CreatedBy      uint   `json:"createdBy" binding:"required"`
	ExpiresAt      string `json:"expiresAt"`
}

// AdminCreateAnnouncement publishes an announcement, scoped to everyone or to
// one group via targetGroupId.
func AdminCreateAnnouncement(c *gin.Context) {
	var input announcementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement := models.Announcement{
		Title:          input.Title,
		Content:        input.Content,
		Priority:       input.Priority,
		TargetAudience: input.TargetAudience,
		TargetGroupID:  input.TargetGroupID,
		CreatedBy:      input.CreatedBy,
		Status:         "active",
	}
	if announcement.Priority == "" {
		announcement.Priority = "normal"
	}
	if announcement.TargetAudience == "" {
		announcement.TargetAudience = "all"
	}
	if input.ExpiresAt != "" {
		expires, err := time.Parse(time.RFC3339, input.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiresAt must be RFC 3339"})
			return
		}
		announcement.ExpiresAt = &expires
	}

	if err := config.DB.Create(&announcement).Error; err != nil {
		logrus.WithError(err).Error("announcements: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

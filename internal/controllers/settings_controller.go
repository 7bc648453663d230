package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

// AdminListSettings returns all system settings rows.
func AdminListSettings(c *gin.Context) {
	var settings []models.SystemSetting
	if err := config.DB.Order("setting_key").Find(&settings).Error; err != nil {
		logrus.WithError(err).Error("settings: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpsertSetting creates or overwrites one setting, keyed on setting_key.
func AdminUpsertSetting(c *gin.Context) {
	var body struct {
		SettingKey   string `json:"settingKey" binding:"required"`
		SettingValue string `json:"settingValue" binding:"required"`
		Description  string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting := models.SystemSetting{
		SettingKey:   body.SettingKey,
		SettingValue: body.SettingValue,
		Description:  body.Description,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "description", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		logrus.WithError(err).Error("settings: upsert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, setting)
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

type investmentRow struct {
	models.Investment
	GroupName string `json:"group_name"`
}

// AdminListInvestments lists all investments with their group names.
func AdminListInvestments(c *gin.Context) {
	var rows []investmentRow
	err := config.DB.Model(&models.Investment{}).
		Select("investments.*, groups.name AS group_name").
		Joins("JOIN groups ON groups.id = investments.group_id").
		Order("investments.investment_date DESC").
		Find(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("investments: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type investmentInput struct {
	GroupID          uint    `json:"groupId" binding:"required"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	EquityPercentage float64 `json:"equityPercentage" binding:"gte=0,lte=100"`
	ExpectedReturn   float64 `json:"expectedReturn"`
	Notes            string  `json:"notes"`
}

// CreateInvestment inserts a pending investment and recomputes the parent
// group's cached total in the same transaction, so the total never lags a
// committed investment.
func CreateInvestment(c *gin.Context) {
	var input investmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var group models.Group
	if err := tx.First(&group, input.GroupID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	investment := models.Investment{
		GroupID:          input.GroupID,
		Amount:           input.Amount,
		EquityPercentage: input.EquityPercentage,
		InvestmentDate:   time.Now(),
		Status:           "pending",
		ExpectedReturn:   input.ExpectedReturn,
		Notes:            input.Notes,
	}
	if err := tx.Create(&investment).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("investments: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := models.RecomputeGroupTotal(tx, input.GroupID); err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("investments: total recompute failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, investment)
}

// AdminUpdateInvestment applies a partial update and recomputes the parent
// group's total. Recomputing happens on every mutation, not just creation: a
// status flip to cancelled must drop out of the cached sum too.
func AdminUpdateInvestment(c *gin.Context) {
	var body struct {
		ID           uint     `json:"id" binding:"required"`
		Status       *string  `json:"status"`
		ActualReturn *float64 `json:"actualReturn"`
		Notes        *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var investment models.Investment
	if err := tx.First(&investment, body.ID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Investment not found"})
		return
	}

	if body.Status != nil {
		investment.Status = *body.Status
	}
	if body.ActualReturn != nil {
		investment.ActualReturn = *body.ActualReturn
	}
	if body.Notes != nil {
		investment.Notes = *body.Notes
	}

	if err := tx.Save(&investment).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("investments: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := models.RecomputeGroupTotal(tx, investment.GroupID); err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("investments: total recompute failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, investment)
}

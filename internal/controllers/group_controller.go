package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

type groupRow struct {
	models.Group
	LeaderName  *string `json:"leader_name"`
	MemberCount int64   `json:"member_count"`
}

func listGroups(c *gin.Context, activeMembersOnly bool) {
	memberJoin := "LEFT JOIN group_members ON group_members.group_id = groups.id"
	if activeMembersOnly {
		memberJoin += " AND group_members.status = 'active'"
	}

	var rows []groupRow
	err := config.DB.Model(&models.Group{}).
		Select("groups.*, users.full_name AS leader_name, COUNT(group_members.id) AS member_count").
		Joins("LEFT JOIN users ON users.id = groups.leader_id").
		Joins(memberJoin).
		Group("groups.id, users.full_name").
		Order("groups.created_at DESC").
		Find(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("groups: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ListGroups is the public group listing with leader name and member count.
func ListGroups(c *gin.Context) {
	listGroups(c, false)
}

// AdminListGroups counts only active memberships.
func AdminListGroups(c *gin.Context) {
	listGroups(c, true)
}

type groupInput struct {
	Name                string  `json:"name" binding:"required"`
	LeaderID            *uint   `json:"leaderId"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	FoundedDate         string  `json:"foundedDate"`
}

// CreateGroup creates a group. The founded date defaults to today and the
// group starts active.
func CreateGroup(c *gin.Context) {
	var input groupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foundedDate := time.Now()
	if input.FoundedDate != "" {
		parsed, err := time.Parse("2006-01-02", input.FoundedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "foundedDate must be YYYY-MM-DD"})
			return
		}
		foundedDate = parsed
	}

	group := models.Group{
		Name:                input.Name,
		LeaderID:            input.LeaderID,
		FoundedDate:         foundedDate,
		MonthlyContribution: input.MonthlyContribution,
		Status:              "active",
	}
	if err := config.DB.Create(&group).Error; err != nil {
		logrus.WithError(err).Error("groups: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, group)
}

// AdminUpdateGroup applies a partial update. total_investment is not settable
// here; it only changes through investment recomputes.
func AdminUpdateGroup(c *gin.Context) {
	var body struct {
		ID                  uint     `json:"id" binding:"required"`
		Name                *string  `json:"name"`
		LeaderID            *uint    `json:"leaderId"`
		MonthlyContribution *float64 `json:"monthlyContribution"`
		Status              *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var group models.Group
	if err := config.DB.First(&group, body.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	if body.Name != nil {
		group.Name = *body.Name
	}
	if body.LeaderID != nil {
		group.LeaderID = body.LeaderID
	}
	if body.MonthlyContribution != nil {
		group.MonthlyContribution = *body.MonthlyContribution
	}
	if body.Status != nil {
		group.Status = *body.Status
	}

	if err := config.DB.Save(&group).Error; err != nil {
		logrus.WithError(err).Error("groups: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, group)
}

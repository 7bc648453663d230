package controllers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
)

type memberRow struct {
	models.Member
	GroupName *string `json:"group_name"`
	GroupRole *string `json:"group_role"`
}

// ListMembers is the public directory listing. A member in several groups
// appears once per group, as the directory table expects.
func ListMembers(c *gin.Context) {
	var rows []memberRow
	err := config.DB.Model(&models.Member{}).
		Select("members.*, groups.name AS group_name, group_members.role AS group_role").
		Joins("LEFT JOIN group_members ON group_members.member_id = members.id").
		Joins("LEFT JOIN groups ON groups.id = group_members.group_id").
		Order("members.created_at DESC").
		Find(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("members: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AdminListMembers lists members with optional search and status filters.
// Search is a case-insensitive substring match on full name or email; both
// filters are AND-combined.
func AdminListMembers(c *gin.Context) {
	query := config.DB.Model(&models.Member{}).
		Select("members.*, groups.name AS group_name, group_members.role AS group_role").
		Joins("LEFT JOIN group_members ON group_members.member_id = members.id").
		Joins("LEFT JOIN groups ON groups.id = group_members.group_id")

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(members.full_name) LIKE ? OR LOWER(members.email) LIKE ?", pattern, pattern)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("members.status = ?", status)
	}

	var rows []memberRow
	if err := query.Order("members.created_at DESC").Find(&rows).Error; err != nil {
		logrus.WithError(err).Error("members: admin list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type memberInput struct {
	FullName     string `json:"fullName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	BusinessType string `json:"businessType"`
	IDType       string `json:"idType"`
	IDNumber     string `json:"idNumber"`
	Gender       string `json:"gender"`
	Age          int    `json:"age" binding:"required,gte=18"`
	Status       string `json:"status"`
}

// CreateMember registers an entrepreneur profile. Status defaults to pending
// until an admin approves it.
func CreateMember(c *gin.Context) {
	var input memberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	member := models.Member{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Location:     input.Location,
		BusinessType: input.BusinessType,
		IDType:       input.IDType,
		IDNumber:     input.IDNumber,
		Gender:       input.Gender,
		Age:          input.Age,
		Status:       status,
	}
	if err := config.DB.Create(&member).Error; err != nil {
		logrus.WithError(err).Error("members: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// AdminUpdateMember applies two independent optional effects: a status update
// and an idempotent group join. The join relies on the composite unique index
// and ON CONFLICT DO NOTHING instead of a pre-check, so a duplicate join is a
// no-op with no check-then-insert race.
func AdminUpdateMember(c *gin.Context) {
	var body struct {
		ID      uint   `json:"id" binding:"required"`
		Status  string `json:"status"`
		GroupID uint   `json:"groupId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Status != "" {
		err := config.DB.Model(&models.Member{}).
			Where("id = ?", body.ID).
			Update("status", body.Status).Error
		if err != nil {
			logrus.WithError(err).Error("members: status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	if body.GroupID != 0 {
		membership := models.GroupMember{
			GroupID:    body.GroupID,
			MemberID:   body.ID,
			JoinedDate: time.Now(),
			Role:       "member",
			Status:     "active",
		}
		err := config.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "member_id"}},
			DoNothing: true,
		}).Create(&membership).Error
		if err != nil {
			logrus.WithError(err).Error("members: group join failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminDeleteMember removes a member and cascades manually: group memberships
// and training progress go first, then the member row. The order matters.
func AdminDeleteMember(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Member ID is required"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := tx.Where("member_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("members: delete memberships failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := tx.Where("member_id = ?", id).Delete(&models.MemberTraining{}).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("members: delete training failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if err := tx.Delete(&models.Member{}, id).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("members: delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type profileRow struct {
	models.Member
	GroupName *string `json:"group_name"`
	GroupID   *uint   `json:"group_id"`
	GroupRole *string `json:"group_role"`
}

// GetMemberProfile returns the member profile linked to a user, with the
// member's group if they belong to one. A member in several groups always
// gets the earliest-joined one.
func GetMemberProfile(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	var rows []profileRow
	err := config.DB.Model(&models.Member{}).
		Select("members.*, groups.name AS group_name, groups.id AS group_id, group_members.role AS group_role").
		Joins("LEFT JOIN group_members ON group_members.member_id = members.id").
		Joins("LEFT JOIN groups ON groups.id = group_members.group_id").
		Where("members.user_id = ?", userID).
		Order("group_members.joined_date ASC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("members: profile lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member profile not found"})
		return
	}

	c.JSON(http.StatusOK, rows[0])
}

// UpdateMemberProfile is the member self-service profile update. Only the
// fields present in the payload are applied.
func UpdateMemberProfile(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	var member models.Member
	if err := config.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	var input struct {
		FullName            *string  `json:"fullName"`
		Phone               *string  `json:"phone"`
		Location            *string  `json:"location"`
		BusinessType        *string  `json:"businessType"`
		BusinessName        *string  `json:"businessName"`
		BusinessDescription *string  `json:"businessDescription"`
		MonthlyRevenue      *float64 `json:"monthlyRevenue"`
		EmployeeCount       *int     `json:"employeeCount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.FullName != nil {
		member.FullName = *input.FullName
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}
	if input.Location != nil {
		member.Location = *input.Location
	}
	if input.BusinessType != nil {
		member.BusinessType = *input.BusinessType
	}
	if input.BusinessName != nil {
		member.BusinessName = *input.BusinessName
	}
	if input.BusinessDescription != nil {
		member.BusinessDescription = *input.BusinessDescription
	}
	if input.MonthlyRevenue != nil {
		member.MonthlyRevenue = *input.MonthlyRevenue
	}
	if input.EmployeeCount != nil {
		member.EmployeeCount = *input.EmployeeCount
	}

	if err := config.DB.Save(&member).Error; err != nil {
		logrus.WithError(err).Error("members: profile update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, member)
}

type memberActivity struct {
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	ActivityDate time.Time `json:"activity_date"`
	ActionText   string    `json:"action_text"`
}

// MemberActivities is the member's personal feed: training completions, group
// joins and their own registration, newest first, capped at 10.
func MemberActivities(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	var member models.Member
	if err := config.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member profile not found"})
		return
	}

	activities := []memberActivity{{
		ActivityType: "member_registered",
		Description:  "JUKUMU",
		ActivityDate: member.CreatedAt,
		ActionText:   "Umejiunge na JUKUMU",
	}}

	var completions []struct {
		Title       string
		CompletedAt *time.Time
	}
	err := config.DB.Model(&models.MemberTraining{}).
		Select("training_modules.title, member_training.completed_at").
		Joins("JOIN training_modules ON training_modules.id = member_training.training_id").
		Where("member_training.member_id = ? AND member_training.status = ?", member.ID, "completed").
		Find(&completions).Error
	if err != nil {
		logrus.WithError(err).Error("members: activity feed failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	for _, row := range completions {
		if row.CompletedAt == nil {
			continue
		}
		activities = append(activities, memberActivity{
			ActivityType: "training_completed",
			Description:  row.Title,
			ActivityDate: *row.CompletedAt,
			ActionText:   "Umekamilisha mafunzo ya " + row.Title,
		})
	}

	var joins []struct {
		Name       string
		JoinedDate time.Time
	}
	err = config.DB.Model(&models.GroupMember{}).
		Select("groups.name, group_members.joined_date").
		Joins("JOIN groups ON groups.id = group_members.group_id").
		Where("group_members.member_id = ?", member.ID).
		Find(&joins).Error
	if err != nil {
		logrus.WithError(err).Error("members: activity feed failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	for _, row := range joins {
		activities = append(activities, memberActivity{
			ActivityType: "group_joined",
			Description:  row.Name,
			ActivityDate: row.JoinedDate,
			ActionText:   "Umejiunge na kundi la " + row.Name,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].ActivityDate.After(activities[j].ActivityDate)
	})
	if len(activities) > 10 {
		activities = activities[:10]
	}

	c.JSON(http.StatusOK, activities)
}

type memberInvestmentRow struct {
	models.Investment
	GroupName            string  `json:"group_name"`
	GroupTotalInvestment float64 `json:"group_total_investment"`
}

// MemberInvestments lists the investments reachable through the member's
// group memberships.
func MemberInvestments(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	var rows []memberInvestmentRow
	err := config.DB.Model(&models.Investment{}).
		Select("investments.*, groups.name AS group_name, groups.total_investment AS group_total_investment").
		Joins("JOIN groups ON groups.id = investments.group_id").
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Joins("JOIN members ON members.id = group_members.member_id").
		Where("members.user_id = ?", userID).
		Order("investments.investment_date DESC").
		Find(&rows).Error
	if err != nil {
		logrus.WithError(err).Error("members: investments lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

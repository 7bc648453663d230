package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"jukumu_fund/internal/config"
	"jukumu_fund/internal/models"
	"jukumu_fund/internal/money"
)

func sumScan(query *gorm.DB, column string) (float64, error) {
	var total float64
	err := query.Select("COALESCE(SUM(" + column + "), 0)").Scan(&total).Error
	return total, err
}

// AdminStats is the admin dashboard headline projection.
func AdminStats(c *gin.Context) {
	db := config.DB
	monthAgo := time.Now().AddDate(0, 0, -30)

	var totalMembers, totalGroups, newMembers, newGroups int64
	err := db.Model(&models.Member{}).Where("status = ?", "active").Count(&totalMembers).Error
	if err == nil {
		err = db.Model(&models.Group{}).Where("status = ?", "active").Count(&totalGroups).Error
	}
	if err == nil {
		err = db.Model(&models.Member{}).Where("created_at >= ?", monthAgo).Count(&newMembers).Error
	}
	if err == nil {
		err = db.Model(&models.Group{}).Where("created_at >= ?", monthAgo).Count(&newGroups).Error
	}

	var totalInvestment, totalReturns float64
	if err == nil {
		totalInvestment, err = sumScan(db.Model(&models.Group{}), "total_investment")
	}
	if err == nil {
		totalReturns, err = sumScan(db.Model(&models.Investment{}).Where("status = ?", "active"), "actual_return")
	}
	if err != nil {
		logrus.WithError(err).Error("stats: admin stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalMembers":        totalMembers,
		"totalGroups":         totalGroups,
		"totalInvestment":     totalInvestment,
		"totalReturns":        totalReturns,
		"newMembersThisMonth": newMembers,
		"newGroupsThisMonth":  newGroups,
		"returnRate":          money.ReturnRate(totalInvestment, totalReturns),
	})
}

// InvestorStats backs the public landing page: portfolio totals plus how many
// distinct regions active members operate in.
func InvestorStats(c *gin.Context) {
	db := config.DB

	var totalMembers, totalGroups, activeRegions int64
	err := db.Model(&models.Member{}).Where("status = ?", "active").Count(&totalMembers).Error
	if err == nil {
		err = db.Model(&models.Group{}).Where("status = ?", "active").Count(&totalGroups).Error
	}
	if err == nil {
		err = db.Model(&models.Member{}).
			Where("status = ? AND location <> ''", "active").
			Distinct("location").
			Count(&activeRegions).Error
	}

	var totalInvestment, totalReturns float64
	if err == nil {
		totalInvestment, err = sumScan(db.Model(&models.Investment{}).Where("status = ?", "active"), "amount")
	}
	if err == nil {
		totalReturns, err = sumScan(db.Model(&models.Investment{}).Where("status = ?", "active"), "actual_return")
	}
	if err != nil {
		logrus.WithError(err).Error("stats: investor stats failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalMembers":    totalMembers,
		"totalGroups":     totalGroups,
		"totalInvestment": totalInvestment,
		"totalReturns":    totalReturns,
		"averageReturn":   money.AverageReturn(totalInvestment, totalReturns),
		"activeRegions":   activeRegions,
	})
}

type adminActivity struct {
	ActivityType string    `json:"activity_type"`
	UserName     string    `json:"user_name"`
	Action       string    `json:"action"`
	ActivityDate time.Time `json:"activity_date"`
}

// AdminActivities merges the last week's registrations, group creations,
// investments and training completions into one reverse-chronological feed,
// capped at 20 entries.
func AdminActivities(c *gin.Context) {
	db := config.DB
	weekAgo := time.Now().AddDate(0, 0, -7)
	var activities []adminActivity

	var members []models.Member
	if err := db.Where("created_at >= ?", weekAgo).Find(&members).Error; err != nil {
		activityError(c, err)
		return
	}
	for _, member := range members {
		activities = append(activities, adminActivity{
			ActivityType: "member_joined",
			UserName:     member.FullName,
			Action:       "Mwanachama mpya amejiunge",
			ActivityDate: member.CreatedAt,
		})
	}

	var groups []models.Group
	if err := db.Where("created_at >= ?", weekAgo).Find(&groups).Error; err != nil {
		activityError(c, err)
		return
	}
	for _, group := range groups {
		activities = append(activities, adminActivity{
			ActivityType: "group_created",
			UserName:     group.Name,
			Action:       "Kundi jipya limeanzishwa",
			ActivityDate: group.CreatedAt,
		})
	}

	var investments []struct {
		GroupName string
		CreatedAt time.Time
	}
	err := db.Model(&models.Investment{}).
		Select("groups.name AS group_name, investments.created_at").
		Joins("JOIN groups ON groups.id = investments.group_id").
		Where("investments.created_at >= ?", weekAgo).
		Find(&investments).Error
	if err != nil {
		activityError(c, err)
		return
	}
	for _, row := range investments {
		activities = append(activities, adminActivity{
			ActivityType: "investment_made",
			UserName:     row.GroupName,
			Action:       "Uwekezaji umeidhinishwa",
			ActivityDate: row.CreatedAt,
		})
	}

	var completions []struct {
		FullName    string
		Title       string
		CompletedAt *time.Time
	}
	err = db.Model(&models.MemberTraining{}).
		Select("members.full_name, training_modules.title, member_training.completed_at").
		Joins("JOIN members ON members.id = member_training.member_id").
		Joins("JOIN training_modules ON training_modules.id = member_training.training_id").
		Where("member_training.completed_at >= ?", weekAgo).
		Find(&completions).Error
	if err != nil {
		activityError(c, err)
		return
	}
	for _, row := range completions {
		if row.CompletedAt == nil {
			continue
		}
		activities = append(activities, adminActivity{
			ActivityType: "training_completed",
			UserName:     row.FullName,
			Action:       "Amekamilisha mafunzo ya " + row.Title,
			ActivityDate: *row.CompletedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].ActivityDate.After(activities[j].ActivityDate)
	})
	if len(activities) > 20 {
		activities = activities[:20]
	}
	if activities == nil {
		activities = []adminActivity{}
	}

	c.JSON(http.StatusOK, activities)
}

func activityError(c *gin.Context, err error) {
	logrus.WithError(err).Error("stats: activity feed failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// Package seed bootstraps and resets the database: the admin user, the
// default system settings and optional sample data.
package seed

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jukumu_fund/internal/models"
)

// AdminEmail is the bootstrap admin account. Clear never deletes it.
const AdminEmail = "admin@jukumu.co.tz"

const bcryptCost = 12

// Clear wipes every table child-first so referential integrity never trips,
// keeping only the admin user.
func Clear(db *gorm.DB) error {
	steps := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.Announcement{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.MemberTraining{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.TrainingModule{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.Investment{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.GroupMember{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.Group{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.Member{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.EducationalContent{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("email <> ?", AdminEmail).Delete(&models.User{}) },
		func(db *gorm.DB) *gorm.DB { return db.Unscoped().Where("1 = 1").Delete(&models.SystemSetting{}) },
	}
	for _, step := range steps {
		if err := step(db).Error; err != nil {
			return err
		}
	}
	return nil
}

// EnsureAdmin creates the admin user when it does not exist yet. The password
// is only needed on first creation.
func EnsureAdmin(db *gorm.DB, password string) error {
	var admin models.User
	err := db.Where("email = ?", AdminEmail).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if password == "" {
		return fmt.Errorf("admin password required to create %s", AdminEmail)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Email:    AdminEmail,
		Password: string(hashed),
		FullName: "JUKUMU Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// DefaultSettings returns the system settings every installation starts with.
func DefaultSettings() []models.SystemSetting {
	return []models.SystemSetting{
		{SettingKey: "default_equity_percentage", SettingValue: "30.00", Description: "Default equity percentage for investments"},
		{SettingKey: "minimum_monthly_contribution", SettingValue: "50000", Description: "Minimum monthly contribution in TSH"},
		{SettingKey: "minimum_group_size", SettingValue: "5", Description: "Minimum number of members required to form a group"},
		{SettingKey: "maximum_group_size", SettingValue: "20", Description: "Maximum number of members allowed in a group"},
	}
}

// EnsureSettings inserts any missing default settings. Existing rows keep
// their values.
func EnsureSettings(db *gorm.DB) error {
	for _, setting := range DefaultSettings() {
		var row models.SystemSetting
		err := db.Where(models.SystemSetting{SettingKey: setting.SettingKey}).
			Attrs(setting).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Sample inserts demo training modules, groups and investments, skipping
// anything already present.
func Sample(db *gorm.DB) error {
	modules := []models.TrainingModule{
		{Title: "Msingi wa Biashara", Description: "Mafunzo ya kimsingi kuhusu jinsi ya kuanza na kuendesha biashara yako.", DurationHours: 2.5, Category: "Biashara", Level: "beginner", Status: "active"},
		{Title: "Uongozi wa Kikundi", Description: "Jinsi ya kuongoza kundi la wanawake kwa ufanisi na kufikia malengo.", DurationHours: 3.0, Category: "Uongozi", Level: "intermediate", Status: "active"},
		{Title: "Usimamizi wa Fedha", Description: "Mafunzo ya jinsi ya kusimamia fedha za kibinafsi na za biashara.", DurationHours: 2.0, Category: "Fedha", Level: "beginner", Status: "active"},
		{Title: "Masoko ya Dijiti", Description: "Jinsi ya kutumia mitandao ya kijamii na teknolojia kuuza bidhaa zako.", DurationHours: 1.5, Category: "Teknolojia", Level: "intermediate", Status: "active"},
		{Title: "Ubunifu wa Bidhaa", Description: "Jinsi ya kubuni bidhaa mpya na kuongeza thamani kwa wateja wako.", DurationHours: 2.5, Category: "Biashara", Level: "advanced", Status: "active"},
	}
	for _, module := range modules {
		var row models.TrainingModule
		err := db.Where(models.TrainingModule{Title: module.Title}).
			Attrs(module).
			FirstOrCreate(&row).Error
		if err != nil {
			return err
		}
	}

	groups := []struct {
		group      models.Group
		investment models.Investment
	}{
		{
			group:      models.Group{Name: "Kundi la Kilimo Mwanza", FoundedDate: date(2024, 1, 15), MonthlyContribution: 50000, Status: "active"},
			investment: models.Investment{Amount: 250000, EquityPercentage: 30, Status: "active", ExpectedReturn: 37500, ActualReturn: 15000},
		},
		{
			group:      models.Group{Name: "Kundi la Ufugaji Arusha", FoundedDate: date(2024, 2, 20), MonthlyContribution: 40000, Status: "active"},
			investment: models.Investment{Amount: 180000, EquityPercentage: 30, Status: "active", ExpectedReturn: 27000, ActualReturn: 8000},
		},
		{
			group:      models.Group{Name: "Kundi la Biashara DSM", FoundedDate: date(2024, 3, 10), MonthlyContribution: 60000, Status: "active"},
			investment: models.Investment{Amount: 320000, EquityPercentage: 30, Status: "active", ExpectedReturn: 48000, ActualReturn: 25000},
		},
	}
	for _, entry := range groups {
		group := models.Group{}
		err := db.Where(models.Group{Name: entry.group.Name}).
			Attrs(entry.group).
			FirstOrCreate(&group).Error
		if err != nil {
			return err
		}

		investment := entry.investment
		investment.GroupID = group.ID
		investment.InvestmentDate = time.Now().AddDate(0, 0, -30)
		var count int64
		if err := db.Model(&models.Investment{}).Where("group_id = ?", group.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&investment).Error; err != nil {
				return err
			}
		}
		if err := models.RecomputeGroupTotal(db, group.ID); err != nil {
			return err
		}
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

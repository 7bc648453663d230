// internal/models/system_setting.go
package models

import "time"

// SystemSetting is a key/value configuration row (equity percentage,
// contribution minimums, group size bounds).
type SystemSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingKey   string    `json:"setting_key" gorm:"uniqueIndex"`
	SettingValue string    `json:"setting_value"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

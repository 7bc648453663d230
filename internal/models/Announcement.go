package models

import (
	"time"

	"gorm.io/gorm"
)

// Announcement is a broadcast message scoped to all members or to one group.
type Announcement struct {
	gorm.Model

	Title          string     `json:"title" binding:"required"`
	Content        string     `json:"content" gorm:"type:text"`
	Priority       string     `json:"priority" gorm:"default:normal"`
	TargetAudience string     `json:"target_audience" gorm:"default:all"`
	TargetGroupID  *uint      `json:"target_group_id"`
	TargetGroup    *Group     `gorm:"foreignKey:TargetGroupID" json:"-"`
	CreatedBy      uint       `json:"created_by"`
	Creator        User       `gorm:"foreignKey:CreatedBy" json:"-"`
	Status         string     `json:"status" gorm:"default:active"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

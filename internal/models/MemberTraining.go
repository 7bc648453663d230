// internal/models/member_training.go
package models

import "time"

// MemberTraining tracks one member's progress through one training module.
// "start" upserts the row to in_progress (refreshing started_at even on a
// completed row); "complete" only updates an existing row.
type MemberTraining struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	MemberID           uint       `json:"member_id" gorm:"uniqueIndex:idx_member_training"`
	TrainingID         uint       `json:"training_id" gorm:"uniqueIndex:idx_member_training"`
	Status             string     `json:"status"` // "in_progress", "completed"
	ProgressPercentage int        `json:"progress_percentage" gorm:"default:0"`
	StartedAt          *time.Time `json:"started_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (MemberTraining) TableName() string {
	return "member_training"
}

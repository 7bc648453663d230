// internal/models/group_member.go
package models

import "time"

// GroupMember records membership of a Member in a Group. The composite unique
// index makes joins idempotent: inserting an existing pair is skipped with an
// ON CONFLICT DO NOTHING rather than pre-checked, so there is no window
// between check and insert.
type GroupMember struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GroupID    uint      `json:"group_id" gorm:"uniqueIndex:idx_group_member"`
	MemberID   uint      `json:"member_id" gorm:"uniqueIndex:idx_group_member"`
	JoinedDate time.Time `json:"joined_date"`
	Role       string    `json:"role" gorm:"default:member"` // "member", "leader"
	Status     string    `json:"status" gorm:"default:active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

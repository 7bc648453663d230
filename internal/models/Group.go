package models

import (
	"time"

	"gorm.io/gorm"
)

// Group represents a collective of members receiving pooled investment
// from the fund. TotalInvestment is a cached sum of the group's active and
// pending investments; it is recomputed on every investment mutation and is
// never written independently.
type Group struct {
	gorm.Model

	Name                string    `json:"name" binding:"required"`
	LeaderID            *uint     `json:"leader_id"`
	Leader              *User     `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
	FoundedDate         time.Time `json:"founded_date"`
	TotalInvestment     float64   `json:"total_investment" gorm:"type:decimal(15,2);default:0"`
	MonthlyContribution float64   `json:"monthly_contribution" gorm:"type:decimal(15,2)"`
	Status              string    `json:"status" gorm:"default:active"` // "pending", "active"

	Members     []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Investments []Investment  `gorm:"foreignKey:GroupID" json:"investments,omitempty"`
}

// RecomputeGroupTotal rewrites a group's cached total_investment from its
// active and pending investments. Callers mutating investments must run this
// on the same transaction as the write so no reader sees a stale total.
func RecomputeGroupTotal(tx *gorm.DB, groupID uint) error {
	var total float64
	err := tx.Model(&Investment{}).
		Where("group_id = ? AND status IN ?", groupID, []string{"active", "pending"}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return tx.Model(&Group{}).Where("id = ?", groupID).Update("total_investment", total).Error
}

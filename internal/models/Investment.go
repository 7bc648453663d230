package models

import (
	"time"

	"gorm.io/gorm"
)

type Investment struct {
	gorm.Model
	GroupID          uint      `json:"group_id" gorm:"index"`
	Group            Group     `gorm:"foreignKey:GroupID" json:"-"`
	Amount           float64   `json:"amount" gorm:"type:decimal(15,2)"`
	EquityPercentage float64   `json:"equity_percentage" gorm:"type:decimal(5,2)"`
	InvestmentDate   time.Time `json:"investment_date"`
	Status           string    `json:"status" gorm:"default:pending"` // "pending", "active", "completed", "cancelled"
	ExpectedReturn   float64   `json:"expected_return" gorm:"type:decimal(15,2)"`
	ActualReturn     float64   `json:"actual_return" gorm:"type:decimal(15,2);default:0"`
	Notes            string    `json:"notes"`
}

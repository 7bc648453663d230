// internal/models/member.go
package models

import (
	"gorm.io/gorm"
)

// Member is an entrepreneur profile. A member may exist without a login
// (registered by an admin); UserID links the profile to a User when present.
type Member struct {
	gorm.Model
	FullName            string  `json:"full_name" binding:"required"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Location            string  `json:"location"`
	BusinessType        string  `json:"business_type"`
	BusinessName        string  `json:"business_name"`
	BusinessDescription string  `json:"business_description"`
	Gender              string  `json:"gender"`
	Age                 int     `json:"age"`
	IDType              string  `json:"id_type"`
	IDNumber            string  `json:"id_number"`
	MonthlyRevenue      float64 `json:"monthly_revenue" gorm:"type:decimal(15,2)"`
	EmployeeCount       int     `json:"employee_count"`
	Status              string  `json:"status" gorm:"default:pending"` // "pending", "active", "inactive"
	UserID              *uint   `json:"user_id" gorm:"index"`
}

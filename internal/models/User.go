package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	FullName string `json:"full_name"`
	Role     string `json:"role" gorm:"default:member"` // "admin", "member"

	// Optional entrepreneur profile for member-role users
	Member *Member `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"member,omitempty"`
}

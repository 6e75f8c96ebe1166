package models

import "time"

// Staff role
const (
	StaffRoleManager      = 1
	StaffRoleReceptionist = 2
)

type Staff struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"unique"`
	PhoneNumber string    `json:"phoneNumber"`
	Password    string    `json:"-"`
	Role        int       `json:"role" gorm:"default:2"`
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

type Admin struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"` // bcrypt hash only
	Role      string    `gorm:"column:role;size:20;not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) BeforeCreate(*gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// ValidRole reports whether role is one of the known admin roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}

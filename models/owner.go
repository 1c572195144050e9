package models

import (
	"time"

	"gorm.io/gorm"
)

type Owner struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null;index" json:"name"`
	Phone     string    `gorm:"column:phone;size:20;not null" json:"phone"`
	Email     string    `gorm:"column:email;size:255;not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Owner) TableName() string {
	return "owners"
}

func (o *Owner) BeforeCreate(*gorm.DB) error {
	assignID(&o.ID)
	return nil
}

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	OnboardingPending   = "pending"
	OnboardingContacted = "contacted"
	OnboardingCompleted = "completed"
)

// OwnerOnboarding is a lead submitted by a prospective PG owner.
type OwnerOnboarding struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;size:100;not null" json:"name"`
	Phone         string    `gorm:"column:phone;size:20;not null" json:"phone"`
	Email         string    `gorm:"column:email;size:255;not null" json:"email"`
	PGName        string    `gorm:"column:pg_name;size:255;not null" json:"pgName"`
	PGType        string    `gorm:"column:pg_type;size:10;not null" json:"pgType"`
	PGAddress     string    `gorm:"column:pg_address;type:text;not null" json:"pgAddress"`
	PGCity        string    `gorm:"column:pg_city;size:100;not null" json:"pgCity"`
	PGState       string    `gorm:"column:pg_state;size:100;not null" json:"pgState"`
	PGPincode     string    `gorm:"column:pg_pincode;size:12;not null" json:"pgPincode"`
	Capacity      *int      `gorm:"column:capacity" json:"capacity"`
	ExistingRooms *int      `gorm:"column:existing_rooms" json:"existingRooms"`
	Message       *string   `gorm:"column:message;type:text" json:"message"`
	Status        string    `gorm:"column:status;size:20;not null;index" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (OwnerOnboarding) TableName() string {
	return "owner_onboardings"
}

func (o *OwnerOnboarding) BeforeCreate(*gorm.DB) error {
	assignID(&o.ID)
	return nil
}

// NormalizeOnboardingStatus lower-cases s and reports whether it is a known status.
func NormalizeOnboardingStatus(s string) (string, bool) {
	st := strings.ToLower(strings.TrimSpace(s))
	switch st {
	case OnboardingPending, OnboardingContacted, OnboardingCompleted:
		return st, true
	}
	return st, false
}

// All returns every model managed by AutoMigrate, parents first.
func All() []interface{} {
	return []interface{}{
		&Admin{},
		&Owner{},
		&PG{},
		&PGImage{},
		&PGVideo{},
		&RentPlan{},
		&Amenity{},
		&Rule{},
		&Inquiry{},
		&OwnerOnboarding{},
	}
}

package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	InquiryPending   = "pending"
	InquiryContacted = "contacted"
	InquiryClosed    = "closed"
)

// Inquiry is a tenant request; PGID is nil for common inquiries.
type Inquiry struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PGID      *string   `gorm:"column:pg_id;type:uuid;index" json:"pgId"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Phone     string    `gorm:"column:phone;size:20;not null" json:"phone"`
	Email     *string   `gorm:"column:email;size:255" json:"email"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	IsCommon  bool      `gorm:"column:is_common;not null" json:"isCommon"`
	Status    string    `gorm:"column:status;size:20;not null;index" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	PG *PGRef `gorm:"foreignKey:PGID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"pg"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

func (i *Inquiry) BeforeCreate(*gorm.DB) error {
	assignID(&i.ID)
	return nil
}

// PGRef is the slim listing view attached to admin inquiry rows.
type PGRef struct {
	ID    string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title string `gorm:"column:title;size:255;not null" json:"title"`
	Type  string `gorm:"column:type;size:10;not null;index" json:"type"`
}

func (PGRef) TableName() string {
	return "pgs"
}

// NormalizeInquiryStatus lower-cases s and reports whether it is a known status.
func NormalizeInquiryStatus(s string) (string, bool) {
	st := strings.ToLower(strings.TrimSpace(s))
	switch st {
	case InquiryPending, InquiryContacted, InquiryClosed:
		return st, true
	}
	return st, false
}

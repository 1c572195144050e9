package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	PGTypeBoys  = "BOYS"
	PGTypeGirls = "GIRLS"
)

// NormalizePGType upper-cases s and reports whether it is a known PG type.
func NormalizePGType(s string) (string, bool) {
	t := strings.ToUpper(strings.TrimSpace(s))
	return t, t == PGTypeBoys || t == PGTypeGirls
}

// PG is a paying-guest listing. Child rows are removed by the database
// when the listing is deleted.
type PG struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Type        string    `gorm:"column:type;size:10;not null;index" json:"type"`
	Address     string    `gorm:"column:address;type:text;not null" json:"address"`
	City        string    `gorm:"column:city;size:100;not null;index" json:"city"`
	State       string    `gorm:"column:state;size:100;not null" json:"state"`
	Pincode     string    `gorm:"column:pincode;size:12;not null" json:"pincode"`
	Latitude    *float64  `gorm:"column:latitude" json:"latitude"`
	Longitude   *float64  `gorm:"column:longitude" json:"longitude"`
	Featured    bool      `gorm:"column:featured;not null;index" json:"featured"`
	Active      bool      `gorm:"column:active;not null;index" json:"active"`
	OwnerID     *string   `gorm:"column:owner_id;type:uuid;index" json:"ownerId"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Owner     *Owner     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"owner,omitempty"`
	Images    []PGImage  `gorm:"foreignKey:PGID;constraint:OnDelete:CASCADE" json:"images"`
	Videos    []PGVideo  `gorm:"foreignKey:PGID;constraint:OnDelete:CASCADE" json:"videos"`
	RentPlans []RentPlan `gorm:"foreignKey:PGID;constraint:OnDelete:CASCADE" json:"rentPlans"`
	Amenities []Amenity  `gorm:"foreignKey:PGID;constraint:OnDelete:CASCADE" json:"amenities"`
	Rules     []Rule     `gorm:"foreignKey:PGID;constraint:OnDelete:CASCADE" json:"rules"`
}

func (PG) TableName() string {
	return "pgs"
}

func (p *PG) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	return nil
}

// FillEmptyRelations replaces nil child slices with empty ones so they
// encode as [] instead of null.
func (p *PG) FillEmptyRelations() {
	if p.Images == nil {
		p.Images = []PGImage{}
	}
	if p.Videos == nil {
		p.Videos = []PGVideo{}
	}
	if p.RentPlans == nil {
		p.RentPlans = []RentPlan{}
	}
	if p.Amenities == nil {
		p.Amenities = []Amenity{}
	}
	if p.Rules == nil {
		p.Rules = []Rule{}
	}
}

type PGImage struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PGID      string    `gorm:"column:pg_id;type:uuid;not null;index" json:"pgId"`
	URL       string    `gorm:"column:url;type:text;not null" json:"url"`
	Caption   *string   `gorm:"column:caption;size:255" json:"caption"`
	Order     int       `gorm:"column:display_order;not null" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (PGImage) TableName() string {
	return "pg_images"
}

func (i *PGImage) BeforeCreate(*gorm.DB) error {
	assignID(&i.ID)
	return nil
}

type PGVideo struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PGID      string    `gorm:"column:pg_id;type:uuid;not null;index" json:"pgId"`
	URL       string    `gorm:"column:url;type:text;not null" json:"url"`
	Thumbnail *string   `gorm:"column:thumbnail;type:text" json:"thumbnail"`
	Caption   *string   `gorm:"column:caption;size:255" json:"caption"`
	Order     int       `gorm:"column:display_order;not null" json:"order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (PGVideo) TableName() string {
	return "pg_videos"
}

func (v *PGVideo) BeforeCreate(*gorm.DB) error {
	assignID(&v.ID)
	return nil
}

type RentPlan struct {
	ID              string   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PGID            string   `gorm:"column:pg_id;type:uuid;not null;index" json:"pgId"`
	SharingType     string   `gorm:"column:sharing_type;size:50;not null" json:"sharingType"`
	Rent            float64  `gorm:"column:rent;type:numeric(12,2);not null" json:"rent"`
	SecurityDeposit *float64 `gorm:"column:security_deposit;type:numeric(12,2)" json:"securityDeposit"`
	Facilities      *string  `gorm:"column:facilities;type:text" json:"facilities"`
}

func (RentPlan) TableName() string {
	return "rent_plans"
}

func (r *RentPlan) BeforeCreate(*gorm.DB) error {
	assignID(&r.ID)
	return nil
}

type Amenity struct {
	ID   string  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PGID string  `gorm:"column:pg_id;type:uuid;not null;index" json:"pgId"`
	Name string  `gorm:"column:name;size:100;not null" json:"name"`
	Icon *string `gorm:"column:icon;size:50" json:"icon"`
}

func (Amenity) TableName() string {
	return "amenities"
}

func (a *Amenity) BeforeCreate(*gorm.DB) error {
	assignID(&a.ID)
	return nil
}

type Rule struct {
	ID   string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PGID string `gorm:"column:pg_id;type:uuid;not null;index" json:"pgId"`
	Rule string `gorm:"column:rule;type:text;not null" json:"rule"`
}

func (Rule) TableName() string {
	return "rules"
}

func (r *Rule) BeforeCreate(*gorm.DB) error {
	assignID(&r.ID)
	return nil
}

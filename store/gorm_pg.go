package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/vnkhanh/pg-server/models"
)

const (
	SortCreatedAt = "createdAt"
	SortRent      = "rent"
)

// ListingFilter narrows the public listing query. Zero values mean "no filter".
type ListingFilter struct {
	Type   string
	City   string
	SortBy string
	Offset int
	Limit  int
}

// PGLoad selects what GetPG loads alongside the listing.
type PGLoad struct {
	ActiveOnly bool
	WithOwner  bool
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, created_at ASC")
}

func orderRentPlans(db *gorm.DB) *gorm.DB {
	return db.Order("rent ASC")
}

// firstOnly trims the preloaded media and plans to the card view:
// first ordered image and the cheapest plan.
func firstOnly(pgs []models.PG) {
	for i := range pgs {
		if len(pgs[i].Images) > 1 {
			pgs[i].Images = pgs[i].Images[:1]
		}
		if len(pgs[i].RentPlans) > 1 {
			pgs[i].RentPlans = pgs[i].RentPlans[:1]
		}
	}
}

// ListActivePGs returns one page of active listings and the total match count.
func (s *GormStore) ListActivePGs(ctx context.Context, f ListingFilter) ([]models.PG, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.PG{}).Where("pgs.active = ?", true)
	if f.Type != "" {
		q = q.Where("pgs.type = ?", f.Type)
	}
	if f.City != "" {
		// POSITION keeps % and _ literal.
		q = q.Where("POSITION(? IN LOWER(pgs.city)) > 0", strings.ToLower(f.City))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "pgs.created_at DESC"
	if f.SortBy == SortRent {
		order = "(SELECT MIN(rp.rent) FROM rent_plans rp WHERE rp.pg_id = pgs.id) ASC NULLS LAST, pgs.created_at DESC"
	}

	var pgs []models.PG
	err := q.Order(order).
		Offset(f.Offset).
		Limit(f.Limit).
		Preload("Images", orderImages).
		Preload("RentPlans", orderRentPlans).
		Find(&pgs).Error
	if err != nil {
		return nil, 0, err
	}
	firstOnly(pgs)
	return pgs, total, nil
}

// ListFeaturedPGs returns featured active listings, newest first.
func (s *GormStore) ListFeaturedPGs(ctx context.Context, limit int) ([]models.PG, error) {
	var pgs []models.PG
	err := s.db.WithContext(ctx).
		Where("featured = ? AND active = ?", true, true).
		Order("created_at DESC").
		Limit(limit).
		Preload("Images", orderImages).
		Preload("RentPlans", orderRentPlans).
		Find(&pgs).Error
	if err != nil {
		return nil, err
	}
	firstOnly(pgs)
	return pgs, nil
}

// ListAllPGs is the admin table: every listing with owner, first image and cheapest plan.
func (s *GormStore) ListAllPGs(ctx context.Context) ([]models.PG, error) {
	var pgs []models.PG
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Preload("Owner").
		Preload("Images", orderImages).
		Preload("RentPlans", orderRentPlans).
		Find(&pgs).Error
	if err != nil {
		return nil, err
	}
	firstOnly(pgs)
	return pgs, nil
}

// GetPG loads a listing with all of its media, plans, amenities and rules.
func (s *GormStore) GetPG(ctx context.Context, id string, load PGLoad) (*models.PG, bool, error) {
	if !validID(id) {
		return nil, false, nil
	}
	q := s.db.WithContext(ctx).
		Preload("Images", orderImages).
		Preload("Videos", orderImages).
		Preload("RentPlans", orderRentPlans).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Preload("Rules")
	if load.WithOwner {
		q = q.Preload("Owner")
	}
	if load.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var pg models.PG
	if err := q.First(&pg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &pg, true, nil
}

// PGExists reports whether a listing with id exists (and is active when activeOnly).
func (s *GormStore) PGExists(ctx context.Context, id string, activeOnly bool) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	q := s.db.WithContext(ctx).Model(&models.PG{}).Where("id = ?", id)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) CreatePG(ctx context.Context, pg *models.PG) error {
	return translate(s.db.WithContext(ctx).Create(pg).Error)
}

// UpdatePG applies column updates; false means no such listing.
func (s *GormStore) UpdatePG(ctx context.Context, id string, updates map[string]interface{}) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	res := s.db.WithContext(ctx).Model(&models.PG{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeletePG hard-deletes a listing; child rows go with it via ON DELETE CASCADE.
func (s *GormStore) DeletePG(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	res := s.db.WithContext(ctx).Delete(&models.PG{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddPGChild inserts an image, video, rent plan, amenity or rule.
func (s *GormStore) AddPGChild(ctx context.Context, child interface{}) error {
	return translate(s.db.WithContext(ctx).Create(child).Error)
}

// DeletePGChild removes one child row of model's table belonging to pgID.
func (s *GormStore) DeletePGChild(ctx context.Context, model interface{}, pgID, childID string) (bool, error) {
	if !validID(pgID, childID) {
		return false, nil
	}
	res := s.db.WithContext(ctx).Where("id = ? AND pg_id = ?", childID, pgID).Delete(model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountPGChildren counts rows of model's table belonging to pgID.
func (s *GormStore) CountPGChildren(ctx context.Context, model interface{}, pgID string) (int64, error) {
	if !validID(pgID) {
		return 0, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(model).Where("pg_id = ?", pgID).Count(&count).Error
	return count, err
}

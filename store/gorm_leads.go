package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vnkhanh/pg-server/models"
)

func (s *GormStore) CreateInquiry(ctx context.Context, inq *models.Inquiry) error {
	return translate(s.db.WithContext(ctx).Create(inq).Error)
}

// ListInquiries returns every inquiry newest first with its listing reference.
func (s *GormStore) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	var rows []models.Inquiry
	if err := s.db.WithContext(ctx).Preload("PG").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateInquiryStatus sets only the status column and returns the fresh row.
func (s *GormStore) UpdateInquiryStatus(ctx context.Context, id, status string) (*models.Inquiry, bool, error) {
	if !validID(id) {
		return nil, false, nil
	}
	res := s.db.WithContext(ctx).Model(&models.Inquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}

	var inq models.Inquiry
	if err := s.db.WithContext(ctx).Preload("PG").First(&inq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &inq, true, nil
}

func (s *GormStore) CreateOnboarding(ctx context.Context, req *models.OwnerOnboarding) error {
	return translate(s.db.WithContext(ctx).Create(req).Error)
}

func (s *GormStore) ListOnboardings(ctx context.Context) ([]models.OwnerOnboarding, error) {
	var rows []models.OwnerOnboarding
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) UpdateOnboardingStatus(ctx context.Context, id, status string) (*models.OwnerOnboarding, bool, error) {
	if !validID(id) {
		return nil, false, nil
	}
	res := s.db.WithContext(ctx).Model(&models.OwnerOnboarding{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}

	var req models.OwnerOnboarding
	if err := s.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &req, true, nil
}

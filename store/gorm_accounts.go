package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vnkhanh/pg-server/models"
)

func (s *GormStore) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) GetAdminByID(ctx context.Context, id string) (*models.Admin, bool, error) {
	if !validID(id) {
		return nil, false, nil
	}
	return s.findAdmin(ctx, "id = ?", id)
}

// GetAdminByEmail expects email already lower-cased.
func (s *GormStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, bool, error) {
	return s.findAdmin(ctx, "email = ?", email)
}

func (s *GormStore) findAdmin(ctx context.Context, cond string, arg string) (*models.Admin, bool, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where(cond, arg).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &admin, true, nil
}

// CreateAdmin returns ErrDuplicate when the email is taken.
func (s *GormStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return translate(s.db.WithContext(ctx).Create(admin).Error)
}

// ListOwners returns all owners sorted by name.
func (s *GormStore) ListOwners(ctx context.Context) ([]models.Owner, error) {
	var owners []models.Owner
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (s *GormStore) OwnerExists(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Owner{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) CreateOwner(ctx context.Context, owner *models.Owner) error {
	return translate(s.db.WithContext(ctx).Create(owner).Error)
}

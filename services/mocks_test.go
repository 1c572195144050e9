package services

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/store"
)

// MockStore implements every store interface the services depend on.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListActivePGs(ctx context.Context, f store.ListingFilter) ([]models.PG, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.PG), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) ListFeaturedPGs(ctx context.Context, limit int) ([]models.PG, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PG), args.Error(1)
}

func (m *MockStore) ListAllPGs(ctx context.Context) ([]models.PG, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PG), args.Error(1)
}

func (m *MockStore) GetPG(ctx context.Context, id string, load store.PGLoad) (*models.PG, bool, error) {
	args := m.Called(ctx, id, load)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.PG), args.Bool(1), args.Error(2)
}

func (m *MockStore) PGExists(ctx context.Context, id string, activeOnly bool) (bool, error) {
	args := m.Called(ctx, id, activeOnly)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CreatePG(ctx context.Context, pg *models.PG) error {
	args := m.Called(ctx, pg)
	if args.Error(0) == nil && pg.ID == "" {
		pg.ID = "pg-new"
	}
	return args.Error(0)
}

func (m *MockStore) UpdatePG(ctx context.Context, id string, updates map[string]interface{}) (bool, error) {
	args := m.Called(ctx, id, updates)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) DeletePG(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) AddPGChild(ctx context.Context, child interface{}) error {
	return m.Called(ctx, child).Error(0)
}

func (m *MockStore) DeletePGChild(ctx context.Context, model interface{}, pgID, childID string) (bool, error) {
	args := m.Called(ctx, model, pgID, childID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CountPGChildren(ctx context.Context, model interface{}, pgID string) (int64, error) {
	args := m.Called(ctx, model, pgID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ListOwners(ctx context.Context) ([]models.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockStore) OwnerExists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CreateOwner(ctx context.Context, owner *models.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockStore) CreateInquiry(ctx context.Context, inq *models.Inquiry) error {
	args := m.Called(ctx, inq)
	if args.Error(0) == nil && inq.ID == "" {
		inq.ID = "inq-new"
	}
	return args.Error(0)
}

func (m *MockStore) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inquiry), args.Error(1)
}

func (m *MockStore) UpdateInquiryStatus(ctx context.Context, id, status string) (*models.Inquiry, bool, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Inquiry), args.Bool(1), args.Error(2)
}

func (m *MockStore) CreateOnboarding(ctx context.Context, req *models.OwnerOnboarding) error {
	args := m.Called(ctx, req)
	if args.Error(0) == nil && req.ID == "" {
		req.ID = "onb-new"
	}
	return args.Error(0)
}

func (m *MockStore) ListOnboardings(ctx context.Context) ([]models.OwnerOnboarding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OwnerOnboarding), args.Error(1)
}

func (m *MockStore) UpdateOnboardingStatus(ctx context.Context, id, status string) (*models.OwnerOnboarding, bool, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.OwnerOnboarding), args.Bool(1), args.Error(2)
}

func (m *MockStore) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) GetAdminByID(ctx context.Context, id string) (*models.Admin, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.Bool(1), args.Error(2)
}

func (m *MockStore) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, bool, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.Bool(1), args.Error(2)
}

func (m *MockStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	args := m.Called(ctx, admin)
	if args.Error(0) == nil && admin.ID == "" {
		admin.ID = "admin-new"
	}
	return args.Error(0)
}

// MockRevoker records revoked session ids.
type MockRevoker struct {
	mock.Mock
}

func (m *MockRevoker) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	return m.Called(ctx, sessionID, ttl).Error(0)
}

func (m *MockRevoker) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

// MockUploader returns a URL derived from the object path.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	args := m.Called(ctx, objectPath, contentType, r)
	return args.String(0), args.Error(1)
}

package controllers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/services"
)

// --- Mocks ---

type MockListingReader struct {
	mock.Mock
}

func (m *MockListingReader) ListListings(ctx context.Context, q services.ListingQuery) (*services.ListingPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ListingPage), args.Error(1)
}

func (m *MockListingReader) FeaturedListings(ctx context.Context, limit int) ([]models.PG, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PG), args.Error(1)
}

func (m *MockListingReader) GetListing(ctx context.Context, id string) (*models.PG, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PG), args.Error(1)
}

// MockIntake implements both intake submitters.
type MockIntake struct {
	mock.Mock
}

func (m *MockIntake) SubmitInquiry(ctx context.Context, in services.InquiryInput) (*services.InquiryReceipt, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.InquiryReceipt), args.Error(1)
}

func (m *MockIntake) SubmitOnboarding(ctx context.Context, in services.OnboardingInput) (*services.OnboardingReceipt, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.OnboardingReceipt), args.Error(1)
}

type MockAuth struct {
	mock.Mock
}

func (m *MockAuth) Login(ctx context.Context, email, password string) (*services.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Session), args.Error(1)
}

func (m *MockAuth) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAuth) ResolveSession(ctx context.Context, token string) (*services.SessionAdmin, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SessionAdmin), args.Error(1)
}

func (m *MockAuth) CreateAdmin(ctx context.Context, actor *services.SessionAdmin, in services.CreateAdminInput) (*services.SessionAdmin, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SessionAdmin), args.Error(1)
}

type MockAdmin struct {
	mock.Mock
}

func (m *MockAdmin) ListPGs(ctx context.Context, search string) ([]models.PG, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PG), args.Error(1)
}

func (m *MockAdmin) GetPG(ctx context.Context, id string) (*models.PG, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PG), args.Error(1)
}

func (m *MockAdmin) CreatePG(ctx context.Context, in services.PGInput) (*models.PG, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PG), args.Error(1)
}

func (m *MockAdmin) UpdatePG(ctx context.Context, id string, patch services.PGPatch) (*models.PG, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PG), args.Error(1)
}

func (m *MockAdmin) DeletePG(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdmin) ListOwners(ctx context.Context) ([]models.Owner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Owner), args.Error(1)
}

func (m *MockAdmin) CreateOwner(ctx context.Context, in services.OwnerInput) (*models.Owner, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Owner), args.Error(1)
}

func (m *MockAdmin) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inquiry), args.Error(1)
}

func (m *MockAdmin) UpdateInquiryStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockAdmin) ListOnboardings(ctx context.Context) ([]models.OwnerOnboarding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OwnerOnboarding), args.Error(1)
}

func (m *MockAdmin) UpdateOnboardingStatus(ctx context.Context, id, status string) (*models.OwnerOnboarding, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OwnerOnboarding), args.Error(1)
}

type MockContent struct {
	mock.Mock
}

func (m *MockContent) AddImage(ctx context.Context, pgID string, in services.ImageInput) (*models.PGImage, error) {
	args := m.Called(ctx, pgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PGImage), args.Error(1)
}

func (m *MockContent) UploadImage(ctx context.Context, pgID string, f services.MediaFile, caption *string, order *int) (*models.PGImage, error) {
	args := m.Called(ctx, pgID, f, caption, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PGImage), args.Error(1)
}

func (m *MockContent) AddVideo(ctx context.Context, pgID string, in services.VideoInput) (*models.PGVideo, error) {
	args := m.Called(ctx, pgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PGVideo), args.Error(1)
}

func (m *MockContent) UploadVideo(ctx context.Context, pgID string, f services.MediaFile, in services.VideoInput) (*models.PGVideo, error) {
	args := m.Called(ctx, pgID, f, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PGVideo), args.Error(1)
}

func (m *MockContent) AddRentPlan(ctx context.Context, pgID string, in services.RentPlanInput) (*models.RentPlan, error) {
	args := m.Called(ctx, pgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RentPlan), args.Error(1)
}

func (m *MockContent) AddAmenity(ctx context.Context, pgID string, in services.AmenityInput) (*models.Amenity, error) {
	args := m.Called(ctx, pgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Amenity), args.Error(1)
}

func (m *MockContent) AddRule(ctx context.Context, pgID string, in services.RuleInput) (*models.Rule, error) {
	args := m.Called(ctx, pgID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rule), args.Error(1)
}

func (m *MockContent) RemoveItem(ctx context.Context, kind, pgID, itemID string) error {
	return m.Called(ctx, kind, pgID, itemID).Error(0)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) WriteInquiries(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if args.Error(0) == nil {
		io.WriteString(w, "xlsx-bytes")
	}
	return args.Error(0)
}

func (m *MockExporter) WriteOnboardings(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if args.Error(0) == nil {
		io.WriteString(w, "xlsx-bytes")
	}
	return args.Error(0)
}

package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
)

func TestWriteInquiries(t *testing.T) {
	ms := new(MockStore)
	svc := NewExportService(ms, zap.NewNop())

	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	ms.On("ListInquiries", mock.Anything).Return([]models.Inquiry{
		{ID: "inq-2", CreatedAt: created, Name: "Ravi", Phone: "9876543210", Message: "Double room?",
			PG: &models.PGRef{ID: "pg-1", Title: "Sunrise PG", Type: models.PGTypeBoys}, Status: models.InquiryContacted},
		{ID: "inq-1", CreatedAt: created, Name: "Asha", Phone: "9876543211", Message: "Any girls PG?",
			IsCommon: true, Status: models.InquiryPending},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteInquiries(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inquiries")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][2])
	assert.Equal(t, "inq-2", rows[1][0])
	assert.Equal(t, "2026-03-01 10:30", rows[1][1])
	assert.Equal(t, "Sunrise PG", rows[1][7])
	assert.Equal(t, "Asha", rows[2][2])
}

func TestWriteOnboardings(t *testing.T) {
	ms := new(MockStore)
	svc := NewExportService(ms, zap.NewNop())

	ms.On("ListOnboardings", mock.Anything).Return([]models.OwnerOnboarding{
		{ID: "onb-1", Name: "Meera", PGName: "Green Nest", PGType: models.PGTypeGirls, Capacity: intPtr(20), Status: models.OnboardingPending},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteOnboardings(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Owner Onboarding")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Green Nest", rows[1][5])
	assert.Equal(t, "20", rows[1][11])
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "inquiries-20260301.xlsx", ExportFilename("inquiries", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

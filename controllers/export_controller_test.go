package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vnkhanh/pg-server/controllers"
)

func exportRouter(m *MockExporter) http.Handler {
	r := newRouter()
	h := controllers.NewExportController(m)
	r.GET("/inquiries/export", h.Inquiries)
	r.GET("/owner-onboarding/export", h.Onboardings)
	return r
}

func TestExportController_Inquiries(t *testing.T) {
	m := new(MockExporter)
	m.On("WriteInquiries", mock.Anything, mock.Anything).Return(nil)

	w := doRequest(exportRouter(m), http.MethodGet, "/inquiries/export", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="inquiries-\d{8}\.xlsx"$`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}

func TestExportController_OnboardingsFailure(t *testing.T) {
	m := new(MockExporter)
	m.On("WriteOnboardings", mock.Anything, mock.Anything).Return(errors.New("query failed"))

	w := doRequest(exportRouter(m), http.MethodGet, "/owner-onboarding/export", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Failed to export owner-onboarding", decode(t, w)["error"])
}

package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/pg-server/controllers"
	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/services"
)

func contentRouter(m *MockContent) http.Handler {
	r := newRouter()
	h := controllers.NewContentController(m)
	r.POST("/pgs/:id/images", h.AddImage)
	r.POST("/pgs/:id/videos", h.AddVideo)
	r.POST("/pgs/:id/rent-plans", h.AddRentPlan)
	r.DELETE("/pgs/:id/images/:itemId", h.RemoveItem(services.KindImages))
	r.DELETE("/pgs/:id/rules/:itemId", h.RemoveItem(services.KindRules))
	return r
}

func multipartRequest(t *testing.T, path string, fields map[string]string, file string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != "" {
		fw, err := mw.CreateFormFile("file", file)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestContentController_AddImageByURL(t *testing.T) {
	m := new(MockContent)
	m.On("AddImage", mock.Anything, "pg-1", mock.MatchedBy(func(in services.ImageInput) bool {
		return in.URL == "https://cdn.example.com/a.jpg" && in.Order == nil
	})).Return(&models.PGImage{ID: "img-1", URL: "https://cdn.example.com/a.jpg"}, nil)

	w := doRequest(contentRouter(m), http.MethodPost, "/pgs/pg-1/images", `{"url":"https://cdn.example.com/a.jpg"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "img-1", decode(t, w)["id"])
	m.AssertExpectations(t)
}

func TestContentController_UploadImage(t *testing.T) {
	m := new(MockContent)
	m.On("UploadImage", mock.Anything, "pg-1",
		mock.MatchedBy(func(f services.MediaFile) bool { return f.Filename == "room.jpg" && f.Body != nil }),
		mock.MatchedBy(func(c *string) bool { return c != nil && *c == "Front" }),
		mock.MatchedBy(func(o *int) bool { return o != nil && *o == 2 }),
	).Return(&models.PGImage{ID: "img-2"}, nil)

	req := multipartRequest(t, "/pgs/pg-1/images", map[string]string{"caption": "Front", "order": "2"}, "room.jpg")
	w := httptest.NewRecorder()
	contentRouter(m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "img-2", decode(t, w)["id"])
	m.AssertExpectations(t)
}

func TestContentController_UploadWithoutFile(t *testing.T) {
	m := new(MockContent)

	req := multipartRequest(t, "/pgs/pg-1/videos", map[string]string{"caption": "Tour"}, "")
	w := httptest.NewRecorder()
	contentRouter(m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "file is required", decode(t, w)["error"])
}

func TestContentController_UploadBadOrder(t *testing.T) {
	m := new(MockContent)

	req := multipartRequest(t, "/pgs/pg-1/images", map[string]string{"order": "first"}, "room.jpg")
	w := httptest.NewRecorder()
	contentRouter(m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "order must be a number", decode(t, w)["error"])
}

func TestContentController_UploadStorageUnavailable(t *testing.T) {
	m := new(MockContent)
	m.On("UploadImage", mock.Anything, "pg-1", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, services.ErrStorageUnavailable)

	req := multipartRequest(t, "/pgs/pg-1/images", nil, "room.jpg")
	w := httptest.NewRecorder()
	contentRouter(m).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "media storage is not configured", decode(t, w)["error"])
}

func TestContentController_AddRentPlanValidation(t *testing.T) {
	m := new(MockContent)
	m.On("AddRentPlan", mock.Anything, "pg-1", mock.Anything).
		Return(nil, &services.ValidationError{Field: "rent", Message: "rent is required"})

	w := doRequest(contentRouter(m), http.MethodPost, "/pgs/pg-1/rent-plans", `{"sharingType":"Double"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rent is required", decode(t, w)["error"])
}

func TestContentController_RemoveItem(t *testing.T) {
	m := new(MockContent)
	m.On("RemoveItem", mock.Anything, services.KindImages, "pg-1", "img-1").Return(nil)
	m.On("RemoveItem", mock.Anything, services.KindRules, "pg-1", "gone").
		Return(&services.Error{Kind: services.ErrNotFound, Message: "Item not found"})
	r := contentRouter(m)

	w := doRequest(r, http.MethodDelete, "/pgs/pg-1/images/img-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item deleted successfully", decode(t, w)["message"])

	w = doRequest(r, http.MethodDelete, "/pgs/pg-1/rules/gone", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found", decode(t, w)["error"])
	m.AssertExpectations(t)
}

package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/services"
)

type ContentManager interface {
	AddImage(ctx context.Context, pgID string, in services.ImageInput) (*models.PGImage, error)
	UploadImage(ctx context.Context, pgID string, f services.MediaFile, caption *string, order *int) (*models.PGImage, error)
	AddVideo(ctx context.Context, pgID string, in services.VideoInput) (*models.PGVideo, error)
	UploadVideo(ctx context.Context, pgID string, f services.MediaFile, in services.VideoInput) (*models.PGVideo, error)
	AddRentPlan(ctx context.Context, pgID string, in services.RentPlanInput) (*models.RentPlan, error)
	AddAmenity(ctx context.Context, pgID string, in services.AmenityInput) (*models.Amenity, error)
	AddRule(ctx context.Context, pgID string, in services.RuleInput) (*models.Rule, error)
	RemoveItem(ctx context.Context, kind, pgID, itemID string) error
}

// ContentController manages the media, rent plans, amenities and rules of a listing.
type ContentController struct {
	content ContentManager
}

func NewContentController(content ContentManager) *ContentController {
	return &ContentController{content: content}
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func formString(c *gin.Context, key string) *string {
	v, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &v
}

func formInt(c *gin.Context, key string) (*int, bool) {
	v := strings.TrimSpace(c.PostForm(key))
	if v == "" {
		return nil, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// mediaFile opens the multipart "file" field. The caller closes it.
func mediaFile(c *gin.Context) (services.MediaFile, func(), bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		return services.MediaFile{}, nil, false
	}
	f, err := fh.Open()
	if err != nil {
		return services.MediaFile{}, nil, false
	}
	return services.MediaFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, func() { f.Close() }, true
}

// POST /api/admin/pgs/:id/images (JSON {url} or multipart file)
func (h *ContentController) AddImage(c *gin.Context) {
	pgID := c.Param("id")

	var (
		img *models.PGImage
		err error
	)
	if isMultipart(c) {
		order, ok := formInt(c, "order")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order must be a number"})
			return
		}
		f, closeFn, ok := mediaFile(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		defer closeFn()
		img, err = h.content.UploadImage(c.Request.Context(), pgID, f, formString(c, "caption"), order)
	} else {
		var in services.ImageInput
		if bindErr := c.ShouldBindJSON(&in); bindErr != nil {
			badBody(c)
			return
		}
		img, err = h.content.AddImage(c.Request.Context(), pgID, in)
	}
	if err != nil {
		respondError(c, err, "Failed to add image")
		return
	}
	c.JSON(http.StatusCreated, img)
}

// POST /api/admin/pgs/:id/videos (JSON {url} or multipart file)
func (h *ContentController) AddVideo(c *gin.Context) {
	pgID := c.Param("id")

	var (
		video *models.PGVideo
		err   error
	)
	if isMultipart(c) {
		order, ok := formInt(c, "order")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order must be a number"})
			return
		}
		f, closeFn, ok := mediaFile(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		defer closeFn()
		video, err = h.content.UploadVideo(c.Request.Context(), pgID, f, services.VideoInput{
			Thumbnail: formString(c, "thumbnail"),
			Caption:   formString(c, "caption"),
			Order:     order,
		})
	} else {
		var in services.VideoInput
		if bindErr := c.ShouldBindJSON(&in); bindErr != nil {
			badBody(c)
			return
		}
		video, err = h.content.AddVideo(c.Request.Context(), pgID, in)
	}
	if err != nil {
		respondError(c, err, "Failed to add video")
		return
	}
	c.JSON(http.StatusCreated, video)
}

// POST /api/admin/pgs/:id/rent-plans
func (h *ContentController) AddRentPlan(c *gin.Context) {
	var in services.RentPlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	plan, err := h.content.AddRentPlan(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to add rent plan")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// POST /api/admin/pgs/:id/amenities
func (h *ContentController) AddAmenity(c *gin.Context) {
	var in services.AmenityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	a, err := h.content.AddAmenity(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to add amenity")
		return
	}
	c.JSON(http.StatusCreated, a)
}

// POST /api/admin/pgs/:id/rules
func (h *ContentController) AddRule(c *gin.Context) {
	var in services.RuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}
	r, err := h.content.AddRule(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "Failed to add rule")
		return
	}
	c.JSON(http.StatusCreated, r)
}

// RemoveItem returns the DELETE /api/admin/pgs/:id/<kind>/:itemId handler.
func (h *ContentController) RemoveItem(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.content.RemoveItem(c.Request.Context(), kind, c.Param("id"), c.Param("itemId")); err != nil {
			respondError(c, err, "Failed to delete item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}

package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/services"
)

// AdminManager is the back-office service.
type AdminManager interface {
	ListPGs(ctx context.Context, search string) ([]models.PG, error)
	GetPG(ctx context.Context, id string) (*models.PG, error)
	CreatePG(ctx context.Context, in services.PGInput) (*models.PG, error)
	UpdatePG(ctx context.Context, id string, patch services.PGPatch) (*models.PG, error)
	DeletePG(ctx context.Context, id string) error

	ListOwners(ctx context.Context) ([]models.Owner, error)
	CreateOwner(ctx context.Context, in services.OwnerInput) (*models.Owner, error)

	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id, status string) (*models.Inquiry, error)
	ListOnboardings(ctx context.Context) ([]models.OwnerOnboarding, error)
	UpdateOnboardingStatus(ctx context.Context, id, status string) (*models.OwnerOnboarding, error)
}

type AdminController struct {
	admin AdminManager
}

func NewAdminController(admin AdminManager) *AdminController {
	return &AdminController{admin: admin}
}

// GET /api/admin/pgs?q=
func (h *AdminController) ListPGs(c *gin.Context) {
	pgs, err := h.admin.ListPGs(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to fetch PGs")
		return
	}
	c.JSON(http.StatusOK, pgs)
}

// GET /api/admin/pgs/:id
func (h *AdminController) GetPG(c *gin.Context) {
	pg, err := h.admin.GetPG(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch PG")
		return
	}
	c.JSON(http.StatusOK, pg)
}

// POST /api/admin/pgs
func (h *AdminController) CreatePG(c *gin.Context) {
	var in services.PGInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}

	pg, err := h.admin.CreatePG(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create PG")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "PG created successfully",
		"pg":      pg,
	})
}

// PATCH /api/admin/pgs/:id
func (h *AdminController) UpdatePG(c *gin.Context) {
	var patch services.PGPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badBody(c)
		return
	}

	pg, err := h.admin.UpdatePG(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "Failed to update PG")
		return
	}
	c.JSON(http.StatusOK, pg)
}

// DELETE /api/admin/pgs/:id
func (h *AdminController) DeletePG(c *gin.Context) {
	if err := h.admin.DeletePG(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete PG")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PG deleted successfully"})
}

// GET /api/admin/owners
func (h *AdminController) ListOwners(c *gin.Context) {
	owners, err := h.admin.ListOwners(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch owners")
		return
	}
	c.JSON(http.StatusOK, owners)
}

// POST /api/admin/owners
func (h *AdminController) CreateOwner(c *gin.Context) {
	var in services.OwnerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}

	owner, err := h.admin.CreateOwner(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to create owner")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Owner created successfully",
		"owner":   owner,
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusReq struct {
	Status string `json:"status"`
}

// GET /api/admin/inquiries
func (h *AdminController) ListInquiries(c *gin.Context) {
	rows, err := h.admin.ListInquiries(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch inquiries")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PATCH /api/admin/inquiries/:id
func (h *AdminController) UpdateInquiry(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	inq, err := h.admin.UpdateInquiryStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update inquiry")
		return
	}
	c.JSON(http.StatusOK, inq)
}

// GET /api/admin/owner-onboarding
func (h *AdminController) ListOnboardings(c *gin.Context) {
	rows, err := h.admin.ListOnboardings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch onboarding requests")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PATCH /api/admin/owner-onboarding/:id
func (h *AdminController) UpdateOnboarding(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	row, err := h.admin.UpdateOnboardingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update request")
		return
	}
	c.JSON(http.StatusOK, row)
}

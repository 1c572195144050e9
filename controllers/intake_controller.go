package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/services"
)

type InquirySubmitter interface {
	SubmitInquiry(ctx context.Context, in services.InquiryInput) (*services.InquiryReceipt, error)
}

type OnboardingSubmitter interface {
	SubmitOnboarding(ctx context.Context, in services.OnboardingInput) (*services.OnboardingReceipt, error)
}

// IntakeController takes the public contact and owner-onboarding forms.
type IntakeController struct {
	inquiries  InquirySubmitter
	onboarding OnboardingSubmitter
}

func NewIntakeController(inquiries InquirySubmitter, onboarding OnboardingSubmitter) *IntakeController {
	return &IntakeController{inquiries: inquiries, onboarding: onboarding}
}

// POST /api/inquiry
func (h *IntakeController) SubmitInquiry(c *gin.Context) {
	var in services.InquiryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}

	receipt, err := h.inquiries.SubmitInquiry(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to submit inquiry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"inquiry": receipt,
	})
}

// POST /api/owner-onboarding
func (h *IntakeController) SubmitOnboarding(c *gin.Context) {
	var in services.OnboardingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badBody(c)
		return
	}

	receipt, err := h.onboarding.SubmitOnboarding(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Failed to submit onboarding request")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Onboarding request submitted successfully",
		"request": receipt,
	})
}

package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
)

type OnboardingStore interface {
	CreateOnboarding(ctx context.Context, req *models.OwnerOnboarding) error
}

type OnboardingInput struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	PGName        string  `json:"pgName"`
	PGType        string  `json:"pgType"`
	PGAddress     string  `json:"pgAddress"`
	PGCity        string  `json:"pgCity"`
	PGState       string  `json:"pgState"`
	PGPincode     string  `json:"pgPincode"`
	Capacity      *int    `json:"capacity"`
	ExistingRooms *int    `json:"existingRooms"`
	Message       *string `json:"message"`
}

type OnboardingReceipt struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	PGName string `json:"pgName"`
	Status string `json:"status"`
}

type OnboardingService struct {
	store OnboardingStore
	log   *zap.Logger
}

func NewOnboardingService(s OnboardingStore, log *zap.Logger) *OnboardingService {
	return &OnboardingService{store: s, log: log}
}

// ValidateOnboarding trims in place, upper-cases pgType and reports the first violation.
func ValidateOnboarding(in *OnboardingInput) error {
	for _, f := range []*string{&in.Name, &in.Phone, &in.Email, &in.PGName, &in.PGType,
		&in.PGAddress, &in.PGCity, &in.PGState, &in.PGPincode} {
		*f = strings.TrimSpace(*f)
	}
	in.Message = optionalString(in.Message)

	if field := firstMissing(
		"name", in.Name,
		"phone", in.Phone,
		"email", in.Email,
		"pgName", in.PGName,
		"pgType", in.PGType,
		"pgAddress", in.PGAddress,
		"pgCity", in.PGCity,
		"pgState", in.PGState,
		"pgPincode", in.PGPincode,
	); field != "" {
		return required(field)
	}
	if !ValidPhone(in.Phone) {
		return invalid("phone", "Invalid phone number format")
	}
	if !ValidEmail(in.Email) {
		return invalid("email", "Invalid email format")
	}
	t, ok := models.NormalizePGType(in.PGType)
	if !ok {
		return invalid("pgType", "Invalid PG type. Must be BOYS or GIRLS")
	}
	in.PGType = t
	if in.Capacity != nil && *in.Capacity < 0 {
		return invalid("capacity", "capacity must not be negative")
	}
	if in.ExistingRooms != nil && *in.ExistingRooms < 0 {
		return invalid("existingRooms", "existingRooms must not be negative")
	}
	return nil
}

// SubmitOnboarding stores an owner lead with status pending.
func (s *OnboardingService) SubmitOnboarding(ctx context.Context, in OnboardingInput) (*OnboardingReceipt, error) {
	if err := ValidateOnboarding(&in); err != nil {
		return nil, err
	}

	req := &models.OwnerOnboarding{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		PGName:        in.PGName,
		PGType:        in.PGType,
		PGAddress:     in.PGAddress,
		PGCity:        in.PGCity,
		PGState:       in.PGState,
		PGPincode:     in.PGPincode,
		Capacity:      in.Capacity,
		ExistingRooms: in.ExistingRooms,
		Message:       in.Message,
		Status:        models.OnboardingPending,
	}
	if err := s.store.CreateOnboarding(ctx, req); err != nil {
		return nil, fmt.Errorf("create onboarding request: %w", err)
	}

	s.log.Info("owner onboarding received", zap.String("request_id", req.ID), zap.String("pg_city", req.PGCity))
	return &OnboardingReceipt{ID: req.ID, Name: req.Name, PGName: req.PGName, Status: req.Status}, nil
}

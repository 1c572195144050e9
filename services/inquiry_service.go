package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
)

type InquiryStore interface {
	PGExists(ctx context.Context, id string, activeOnly bool) (bool, error)
	CreateInquiry(ctx context.Context, inq *models.Inquiry) error
}

// InquiryInput is the public inquiry form.
type InquiryInput struct {
	PGID     *string `json:"pgId"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
	Message  string  `json:"message"`
	IsCommon bool    `json:"isCommon"`
}

// InquiryReceipt is what the submitter gets back.
type InquiryReceipt struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type InquiryService struct {
	store InquiryStore
	log   *zap.Logger
}

func NewInquiryService(s InquiryStore, log *zap.Logger) *InquiryService {
	return &InquiryService{store: s, log: log}
}

// ValidateInquiry trims the input in place and reports the first violated rule.
func ValidateInquiry(in *InquiryInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	in.Email = optionalString(in.Email)
	in.PGID = optionalString(in.PGID)

	if field := firstMissing("name", in.Name, "phone", in.Phone, "message", in.Message); field != "" {
		return required(field)
	}
	if !ValidPhone(in.Phone) {
		return invalid("phone", "Invalid phone number format")
	}
	if in.Email != nil && !ValidEmail(*in.Email) {
		return invalid("email", "Invalid email format")
	}
	return nil
}

// SubmitInquiry validates and stores a tenant inquiry with status pending.
func (s *InquiryService) SubmitInquiry(ctx context.Context, in InquiryInput) (*InquiryReceipt, error) {
	if err := ValidateInquiry(&in); err != nil {
		return nil, err
	}

	if in.PGID != nil {
		ok, err := s.store.PGExists(ctx, *in.PGID, true)
		if err != nil {
			return nil, fmt.Errorf("check pg %s: %w", *in.PGID, err)
		}
		if !ok {
			return nil, notFound("PG not found")
		}
	} else if !in.IsCommon {
		// Kept as sent; admins see it as a general inquiry.
		s.log.Warn("inquiry without pgId is not marked common")
	}

	inq := &models.Inquiry{
		PGID:     in.PGID,
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Message:  in.Message,
		IsCommon: in.IsCommon,
		Status:   models.InquiryPending,
	}
	if err := s.store.CreateInquiry(ctx, inq); err != nil {
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.log.Info("inquiry received", zap.String("inquiry_id", inq.ID), zap.Bool("is_common", inq.IsCommon))
	return &InquiryReceipt{ID: inq.ID, Name: inq.Name, Message: inq.Message, Status: inq.Status}, nil
}

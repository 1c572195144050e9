package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/store"
	"github.com/vnkhanh/pg-server/utils"
)

// AdminStore is everything the back office reads and writes.
type AdminStore interface {
	ListAllPGs(ctx context.Context) ([]models.PG, error)
	GetPG(ctx context.Context, id string, load store.PGLoad) (*models.PG, bool, error)
	CreatePG(ctx context.Context, pg *models.PG) error
	UpdatePG(ctx context.Context, id string, updates map[string]interface{}) (bool, error)
	DeletePG(ctx context.Context, id string) (bool, error)

	ListOwners(ctx context.Context) ([]models.Owner, error)
	OwnerExists(ctx context.Context, id string) (bool, error)
	CreateOwner(ctx context.Context, owner *models.Owner) error

	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id, status string) (*models.Inquiry, bool, error)
	ListOnboardings(ctx context.Context) ([]models.OwnerOnboarding, error)
	UpdateOnboardingStatus(ctx context.Context, id, status string) (*models.OwnerOnboarding, bool, error)
}

// PGInput is the create form. Featured/Active default to false/true when not booleans.
type PGInput struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Type        string               `json:"type"`
	Address     string               `json:"address"`
	City        string               `json:"city"`
	State       string               `json:"state"`
	Pincode     string               `json:"pincode"`
	Latitude    utils.FlexFloat      `json:"latitude"`
	Longitude   utils.FlexFloat      `json:"longitude"`
	OwnerID     utils.NullableString `json:"ownerId"`
	Featured    utils.OptionalBool   `json:"featured"`
	Active      utils.OptionalBool   `json:"active"`
}

// PGPatch is a partial update; nil / unset fields are left alone.
type PGPatch struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Type        *string              `json:"type"`
	Address     *string              `json:"address"`
	City        *string              `json:"city"`
	State       *string              `json:"state"`
	Pincode     *string              `json:"pincode"`
	Latitude    utils.FlexFloat      `json:"latitude"`
	Longitude   utils.FlexFloat      `json:"longitude"`
	OwnerID     utils.NullableString `json:"ownerId"`
	Featured    utils.OptionalBool   `json:"featured"`
	Active      utils.OptionalBool   `json:"active"`
}

type OwnerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type AdminService struct {
	store AdminStore
	log   *zap.Logger
}

func NewAdminService(s AdminStore, log *zap.Logger) *AdminService {
	return &AdminService{store: s, log: log}
}

// ListPGs returns every listing, active or not. search matches title, city or state.
func (s *AdminService) ListPGs(ctx context.Context, search string) ([]models.PG, error) {
	pgs, err := s.store.ListAllPGs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pgs: %w", err)
	}
	pgs = FilterPGs(pgs, search)
	for i := range pgs {
		pgs[i].FillEmptyRelations()
	}
	return pgs, nil
}

// FilterPGs keeps listings whose title, city or state contains q (case-insensitive).
func FilterPGs(pgs []models.PG, q string) []models.PG {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.PG, 0, len(pgs))
	for _, pg := range pgs {
		if q == "" ||
			strings.Contains(strings.ToLower(pg.Title), q) ||
			strings.Contains(strings.ToLower(pg.City), q) ||
			strings.Contains(strings.ToLower(pg.State), q) {
			out = append(out, pg)
		}
	}
	return out
}

// GetPG is the admin detail: no active filter, owner included.
func (s *AdminService) GetPG(ctx context.Context, id string) (*models.PG, error) {
	pg, found, err := s.store.GetPG(ctx, id, store.PGLoad{WithOwner: true})
	if err != nil {
		return nil, fmt.Errorf("get pg %s: %w", id, err)
	}
	if !found {
		return nil, notFound("PG not found")
	}
	pg.FillEmptyRelations()
	return pg, nil
}

func (s *AdminService) CreatePG(ctx context.Context, in PGInput) (*models.PG, error) {
	if field := firstMissing(
		"title", in.Title,
		"description", in.Description,
		"type", in.Type,
		"address", in.Address,
		"city", in.City,
		"state", in.State,
		"pincode", in.Pincode,
	); field != "" {
		return nil, required(field)
	}
	pgType, ok := models.NormalizePGType(in.Type)
	if !ok {
		return nil, invalid("type", "Invalid PG type. Must be BOYS or GIRLS")
	}
	if err := s.checkOwner(ctx, in.OwnerID.Value); err != nil {
		return nil, err
	}

	pg := &models.PG{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Type:        pgType,
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		State:       strings.TrimSpace(in.State),
		Pincode:     strings.TrimSpace(in.Pincode),
		Latitude:    in.Latitude.Value,
		Longitude:   in.Longitude.Value,
		OwnerID:     in.OwnerID.Value,
		Featured:    in.Featured.Set && in.Featured.Value,
		Active:      !in.Active.Set || in.Active.Value,
	}
	if err := s.store.CreatePG(ctx, pg); err != nil {
		return nil, fmt.Errorf("create pg: %w", err)
	}

	s.log.Info("pg created", zap.String("pg_id", pg.ID), zap.String("type", pg.Type))
	pg.FillEmptyRelations()
	return pg, nil
}

// UpdatePG applies only the supplied fields.
func (s *AdminService) UpdatePG(ctx context.Context, id string, patch PGPatch) (*models.PG, error) {
	updates := map[string]interface{}{}

	for _, f := range []struct {
		column string
		value  *string
	}{
		{"title", patch.Title},
		{"description", patch.Description},
		{"address", patch.Address},
		{"city", patch.City},
		{"state", patch.State},
		{"pincode", patch.Pincode},
	} {
		if f.value == nil {
			continue
		}
		v := strings.TrimSpace(*f.value)
		// A listing may clear its description.
		if v == "" && f.column != "description" {
			return nil, invalid(f.column, "%s must not be empty", f.column)
		}
		updates[f.column] = v
	}
	if patch.Type != nil {
		t, ok := models.NormalizePGType(*patch.Type)
		if !ok {
			return nil, invalid("type", "Invalid PG type. Must be BOYS or GIRLS")
		}
		updates["type"] = t
	}
	if patch.Latitude.Set {
		updates["latitude"] = patch.Latitude.Value
	}
	if patch.Longitude.Set {
		updates["longitude"] = patch.Longitude.Value
	}
	if patch.OwnerID.Set {
		if err := s.checkOwner(ctx, patch.OwnerID.Value); err != nil {
			return nil, err
		}
		updates["owner_id"] = patch.OwnerID.Value
	}
	if patch.Featured.Set {
		updates["featured"] = patch.Featured.Value
	}
	if patch.Active.Set {
		updates["active"] = patch.Active.Value
	}

	if len(updates) > 0 {
		ok, err := s.store.UpdatePG(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("update pg %s: %w", id, err)
		}
		if !ok {
			return nil, notFound("PG not found")
		}
		s.log.Info("pg updated", zap.String("pg_id", id), zap.Int("fields", len(updates)))
	}
	return s.GetPG(ctx, id)
}

// DeletePG removes the listing and, through the schema, all of its child rows.
func (s *AdminService) DeletePG(ctx context.Context, id string) error {
	ok, err := s.store.DeletePG(ctx, id)
	if err != nil {
		return fmt.Errorf("delete pg %s: %w", id, err)
	}
	if !ok {
		return notFound("PG not found")
	}
	s.log.Info("pg deleted", zap.String("pg_id", id))
	return nil
}

func (s *AdminService) checkOwner(ctx context.Context, ownerID *string) error {
	if ownerID == nil {
		return nil
	}
	ok, err := s.store.OwnerExists(ctx, *ownerID)
	if err != nil {
		return fmt.Errorf("check owner %s: %w", *ownerID, err)
	}
	if !ok {
		return notFound("Owner not found")
	}
	return nil
}

// ListOwners is sorted by name for the owner picker.
func (s *AdminService) ListOwners(ctx context.Context) ([]models.Owner, error) {
	owners, err := s.store.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	if owners == nil {
		owners = []models.Owner{}
	}
	return owners, nil
}

func (s *AdminService) CreateOwner(ctx context.Context, in OwnerInput) (*models.Owner, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if field := firstMissing("name", in.Name, "phone", in.Phone, "email", in.Email); field != "" {
		return nil, required(field)
	}
	if !ValidPhone(in.Phone) {
		return nil, invalid("phone", "Invalid phone number format")
	}
	if !ValidEmail(in.Email) {
		return nil, invalid("email", "Invalid email format")
	}

	owner := &models.Owner{Name: in.Name, Phone: in.Phone, Email: in.Email}
	if err := s.store.CreateOwner(ctx, owner); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}
	return owner, nil
}

// ListInquiries is newest first with the linked listing, if any.
func (s *AdminService) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	rows, err := s.store.ListInquiries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	if rows == nil {
		rows = []models.Inquiry{}
	}
	return rows, nil
}

// UpdateInquiryStatus changes only the status. Any known status may follow any other.
func (s *AdminService) UpdateInquiryStatus(ctx context.Context, id, status string) (*models.Inquiry, error) {
	if strings.TrimSpace(status) == "" {
		return nil, invalid("status", "Status is required")
	}
	st, ok := models.NormalizeInquiryStatus(status)
	if !ok {
		return nil, invalid("status", "Invalid status. Must be one of pending, contacted, closed")
	}

	inq, found, err := s.store.UpdateInquiryStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("update inquiry %s: %w", id, err)
	}
	if !found {
		return nil, notFound("Inquiry not found")
	}
	s.log.Info("inquiry status changed", zap.String("inquiry_id", id), zap.String("status", st))
	return inq, nil
}

func (s *AdminService) ListOnboardings(ctx context.Context) ([]models.OwnerOnboarding, error) {
	rows, err := s.store.ListOnboardings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list onboarding requests: %w", err)
	}
	if rows == nil {
		rows = []models.OwnerOnboarding{}
	}
	return rows, nil
}

func (s *AdminService) UpdateOnboardingStatus(ctx context.Context, id, status string) (*models.OwnerOnboarding, error) {
	if strings.TrimSpace(status) == "" {
		return nil, invalid("status", "Status is required")
	}
	st, ok := models.NormalizeOnboardingStatus(status)
	if !ok {
		return nil, invalid("status", "Invalid status. Must be one of pending, contacted, completed")
	}

	req, found, err := s.store.UpdateOnboardingStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("update onboarding request %s: %w", id, err)
	}
	if !found {
		return nil, notFound("Request not found")
	}
	s.log.Info("onboarding status changed", zap.String("request_id", id), zap.String("status", st))
	return req, nil
}

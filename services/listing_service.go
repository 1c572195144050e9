package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/store"
)

const (
	DefaultPage          = 1
	DefaultLimit         = 12
	MaxLimit             = 100
	DefaultFeaturedLimit = 6
	MaxFeaturedLimit     = 50
)

// ListingStore is the read side of the PG table used by the public site.
type ListingStore interface {
	ListActivePGs(ctx context.Context, f store.ListingFilter) ([]models.PG, int64, error)
	ListFeaturedPGs(ctx context.Context, limit int) ([]models.PG, error)
	GetPG(ctx context.Context, id string, load store.PGLoad) (*models.PG, bool, error)
}

// ListingQuery is the public listing request. Zero page/limit take defaults.
type ListingQuery struct {
	Type   string
	City   string
	SortBy string
	Page   int
	Limit  int
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ListingPage struct {
	PGs        []models.PG `json:"pgs"`
	Pagination Pagination  `json:"pagination"`
}

type ListingService struct {
	store ListingStore
	log   *zap.Logger
}

func NewListingService(s ListingStore, log *zap.Logger) *ListingService {
	return &ListingService{store: s, log: log}
}

// Normalize applies defaults and bounds and validates the type filter.
func (q ListingQuery) Normalize() (ListingQuery, error) {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.City = strings.TrimSpace(q.City)
	if q.Type != "" {
		t, ok := models.NormalizePGType(q.Type)
		if !ok {
			return q, invalid("type", "Invalid PG type. Must be BOYS or GIRLS")
		}
		q.Type = t
	}
	if q.SortBy != store.SortRent {
		q.SortBy = store.SortCreatedAt
	}
	return q, nil
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// ListListings returns one page of active listings with their card data.
func (s *ListingService) ListListings(ctx context.Context, q ListingQuery) (*ListingPage, error) {
	q, err := q.Normalize()
	if err != nil {
		return nil, err
	}

	pgs, total, err := s.store.ListActivePGs(ctx, store.ListingFilter{
		Type:   q.Type,
		City:   q.City,
		SortBy: q.SortBy,
		Offset: (q.Page - 1) * q.Limit,
		Limit:  q.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	if pgs == nil {
		pgs = []models.PG{}
	}
	for i := range pgs {
		pgs[i].FillEmptyRelations()
	}

	return &ListingPage{
		PGs: pgs,
		Pagination: Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: TotalPages(total, q.Limit),
		},
	}, nil
}

// FeaturedListings returns up to limit featured active listings, newest first.
func (s *ListingService) FeaturedListings(ctx context.Context, limit int) ([]models.PG, error) {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	if limit > MaxFeaturedLimit {
		limit = MaxFeaturedLimit
	}

	pgs, err := s.store.ListFeaturedPGs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured: %w", err)
	}
	if pgs == nil {
		pgs = []models.PG{}
	}
	for i := range pgs {
		pgs[i].FillEmptyRelations()
	}
	return pgs, nil
}

// GetListing returns an active listing with everything attached. Inactive ones read as missing.
func (s *ListingService) GetListing(ctx context.Context, id string) (*models.PG, error) {
	pg, found, err := s.store.GetPG(ctx, id, store.PGLoad{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}
	if !found {
		return nil, notFound("PG not found")
	}
	pg.FillEmptyRelations()
	return pg, nil
}

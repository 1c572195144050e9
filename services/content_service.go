package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
)

// Child kinds as they appear in admin URLs.
const (
	KindImages    = "images"
	KindVideos    = "videos"
	KindRentPlans = "rent-plans"
	KindAmenities = "amenities"
	KindRules     = "rules"
)

type ContentStore interface {
	PGExists(ctx context.Context, id string, activeOnly bool) (bool, error)
	AddPGChild(ctx context.Context, child interface{}) error
	DeletePGChild(ctx context.Context, model interface{}, pgID, childID string) (bool, error)
	CountPGChildren(ctx context.Context, model interface{}, pgID string) (int64, error)
}

// MediaUploader stores an object and returns its public URL.
type MediaUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// MediaFile is an uploaded file handed over by the transport layer.
type MediaFile struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type ImageInput struct {
	URL     string  `json:"url"`
	Caption *string `json:"caption"`
	Order   *int    `json:"order"`
}

type VideoInput struct {
	URL       string  `json:"url"`
	Thumbnail *string `json:"thumbnail"`
	Caption   *string `json:"caption"`
	Order     *int    `json:"order"`
}

type RentPlanInput struct {
	SharingType     string   `json:"sharingType"`
	Rent            *float64 `json:"rent"`
	SecurityDeposit *float64 `json:"securityDeposit"`
	Facilities      *string  `json:"facilities"`
}

type AmenityInput struct {
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}

type RuleInput struct {
	Rule string `json:"rule"`
}

// ContentService manages a listing's media, rent plans, amenities and rules.
type ContentService struct {
	store    ContentStore
	uploader MediaUploader
	log      *zap.Logger
}

// NewContentService accepts a nil uploader; uploads then fail with ErrStorageUnavailable.
func NewContentService(s ContentStore, uploader MediaUploader, log *zap.Logger) *ContentService {
	return &ContentService{store: s, uploader: uploader, log: log}
}

func (s *ContentService) requirePG(ctx context.Context, pgID string) error {
	ok, err := s.store.PGExists(ctx, pgID, false)
	if err != nil {
		return fmt.Errorf("check pg %s: %w", pgID, err)
	}
	if !ok {
		return notFound("PG not found")
	}
	return nil
}

func (s *ContentService) nextOrder(ctx context.Context, model interface{}, pgID string, order *int) (int, error) {
	if order != nil {
		if *order < 0 {
			return 0, invalid("order", "order must not be negative")
		}
		return *order, nil
	}
	n, err := s.store.CountPGChildren(ctx, model, pgID)
	if err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	return int(n), nil
}

// upload puts f under pgs/<pgID>/ with a fresh name that keeps the extension.
func (s *ContentService) upload(ctx context.Context, pgID string, f MediaFile) (string, error) {
	if s.uploader == nil {
		return "", ErrStorageUnavailable
	}
	if f.Body == nil {
		return "", required("file")
	}
	objectPath := path.Join("pgs", pgID, uuid.NewString()+strings.ToLower(path.Ext(f.Filename)))
	url, err := s.uploader.Upload(ctx, objectPath, f.ContentType, f.Body)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return url, nil
}

func (s *ContentService) AddImage(ctx context.Context, pgID string, in ImageInput) (*models.PGImage, error) {
	in.URL = strings.TrimSpace(in.URL)
	if in.URL == "" {
		return nil, required("url")
	}
	if err := s.requirePG(ctx, pgID); err != nil {
		return nil, err
	}
	return s.insertImage(ctx, pgID, in)
}

func (s *ContentService) insertImage(ctx context.Context, pgID string, in ImageInput) (*models.PGImage, error) {
	order, err := s.nextOrder(ctx, &models.PGImage{}, pgID, in.Order)
	if err != nil {
		return nil, err
	}

	img := &models.PGImage{PGID: pgID, URL: in.URL, Caption: optionalString(in.Caption), Order: order}
	if err := s.store.AddPGChild(ctx, img); err != nil {
		return nil, fmt.Errorf("add image: %w", err)
	}
	return img, nil
}

// UploadImage stores the file first, then records it like AddImage.
func (s *ContentService) UploadImage(ctx context.Context, pgID string, f MediaFile, caption *string, order *int) (*models.PGImage, error) {
	if err := s.requirePG(ctx, pgID); err != nil {
		return nil, err
	}
	url, err := s.upload(ctx, pgID, f)
	if err != nil {
		return nil, err
	}
	s.log.Info("image uploaded", zap.String("pg_id", pgID), zap.String("url", url))
	return s.insertImage(ctx, pgID, ImageInput{URL: url, Caption: caption, Order: order})
}

func (s *ContentService) AddVideo(ctx context.Context, pgID string, in VideoInput) (*models.PGVideo, error) {
	in.URL = strings.TrimSpace(in.URL)
	if in.URL == "" {
		return nil, required("url")
	}
	if err := s.requirePG(ctx, pgID); err != nil {
		return nil, err
	}
	return s.insertVideo(ctx, pgID, in)
}

func (s *ContentService) insertVideo(ctx context.Context, pgID string, in VideoInput) (*models.PGVideo, error) {
	order, err := s.nextOrder(ctx, &models.PGVideo{}, pgID, in.Order)
	if err != nil {
		return nil, err
	}

	video := &models.PGVideo{
		PGID:      pgID,
		URL:       in.URL,
		Thumbnail: optionalString(in.Thumbnail),
		Caption:   optionalString(in.Caption),
		Order:     order,
	}
	if err := s.store.AddPGChild(ctx, video); err != nil {
		return nil, fmt.Errorf("add video: %w", err)
	}
	return video, nil
}

func (s *ContentService) UploadVideo(ctx context.Context, pgID string, f MediaFile, in VideoInput) (*models.PGVideo, error) {
	if err := s.requirePG(ctx, pgID); err != nil {
		return nil, err
	}
	url, err := s.upload(ctx, pgID, f)
	if err != nil {
		return nil, err
	}
	s.log.Info("video uploaded", zap.String("pg_id", pgID), zap.String("url", url))
	in.URL = url
	return s.insertVideo(ctx, pgID, in)
}

func (s *ContentService) AddRentPlan(ctx context.Context, pgID string, in RentPlanInput) (*models.RentPlan, error) {
	in.SharingType = strings.TrimSpace(in.SharingType)
	if in.SharingType == "" {
		return nil, required("sharingType")
	}
	if in.Rent == nil {
		return nil, required("rent")
	}
	if *in.Rent < 0 {
		return nil, invalid("rent", "rent must not be negative")
	}
	if in.SecurityDeposit != nil && *in.SecurityDeposit < 0 {
		return nil, invalid("securityDeposit", "securityDeposit must not be negative")
	}
	if err := s.requirePG(ctx, pgID); err != nil {
		return nil, err
	}

	plan := &models.RentPlan{
		PGID:            pgID,
		SharingType:     in.SharingType,
		Rent:            *in.Rent,
		SecurityDeposit: in.SecurityDeposit,
		Facilities:      optionalString(in.Facilities),
	}
	if err := s.store.AddPGChild(ctx, plan); err != nil {
		return nil, fmt.Errorf("add rent plan: %w", err)
	}
	return plan, nil
}

func (s *ContentService) AddAmenity(ctx context.Context, pgID string, in AmenityInput) (*models.Amenity, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, required("name")
	}
	if err := s.requirePG(ctx, pgID); err != nil {
		return nil, err
	}

	a := &models.Amenity{PGID: pgID, Name: in.Name, Icon: optionalString(in.Icon)}
	if err := s.store.AddPGChild(ctx, a); err != nil {
		return nil, fmt.Errorf("add amenity: %w", err)
	}
	return a, nil
}

func (s *ContentService) AddRule(ctx context.Context, pgID string, in RuleInput) (*models.Rule, error) {
	in.Rule = strings.TrimSpace(in.Rule)
	if in.Rule == "" {
		return nil, required("rule")
	}
	if err := s.requirePG(ctx, pgID); err != nil {
		return nil, err
	}

	r := &models.Rule{PGID: pgID, Rule: in.Rule}
	if err := s.store.AddPGChild(ctx, r); err != nil {
		return nil, fmt.Errorf("add rule: %w", err)
	}
	return r, nil
}

// RemoveItem deletes one child row of the given kind from a listing.
func (s *ContentService) RemoveItem(ctx context.Context, kind, pgID, itemID string) error {
	var model interface{}
	switch kind {
	case KindImages:
		model = &models.PGImage{}
	case KindVideos:
		model = &models.PGVideo{}
	case KindRentPlans:
		model = &models.RentPlan{}
	case KindAmenities:
		model = &models.Amenity{}
	case KindRules:
		model = &models.Rule{}
	default:
		return notFound("Unknown item type")
	}

	ok, err := s.store.DeletePGChild(ctx, model, pgID, itemID)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, itemID, err)
	}
	if !ok {
		return notFound("Item not found")
	}
	s.log.Info("pg item removed", zap.String("pg_id", pgID), zap.String("kind", kind), zap.String("item_id", itemID))
	return nil
}

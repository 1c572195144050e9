package backendclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/services"
)

// RemoteError is a non-2xx answer from the backend API.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// HTTPStatus lets the transport layer pass the backend status through.
func (e *RemoteError) HTTPStatus() int {
	return e.Status
}

type errorBody struct {
	Error string `json:"error"`
}

// Client forwards the public surface to the backend API. Requests are not retried.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: client, logger: logger}
}

func (c *Client) do(req *resty.Request, method, path string) error {
	var failure errorBody
	resp, err := req.SetError(&failure).Execute(method, path)
	if err != nil {
		c.logger.Error("backend call failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := failure.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		c.logger.Warn("backend returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("msg", msg),
		)
		return &RemoteError{Status: resp.StatusCode(), Message: msg}
	}
	return nil
}

func (c *Client) ListListings(ctx context.Context, q services.ListingQuery) (*services.ListingPage, error) {
	params := map[string]string{}
	if q.Type != "" {
		params["type"] = q.Type
	}
	if q.City != "" {
		params["city"] = q.City
	}
	if q.SortBy != "" {
		params["sortBy"] = q.SortBy
	}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}

	var page services.ListingPage
	req := c.http.R().SetContext(ctx).SetQueryParams(params).SetResult(&page)
	if err := c.do(req, resty.MethodGet, "/api/pg/listings"); err != nil {
		return nil, err
	}
	if page.PGs == nil {
		page.PGs = []models.PG{}
	}
	return &page, nil
}

func (c *Client) FeaturedListings(ctx context.Context, limit int) ([]models.PG, error) {
	var pgs []models.PG
	req := c.http.R().SetContext(ctx).SetResult(&pgs)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	if err := c.do(req, resty.MethodGet, "/api/pg/featured"); err != nil {
		return nil, err
	}
	if pgs == nil {
		pgs = []models.PG{}
	}
	return pgs, nil
}

func (c *Client) GetListing(ctx context.Context, id string) (*models.PG, error) {
	var pg models.PG
	req := c.http.R().SetContext(ctx).SetPathParam("id", id).SetResult(&pg)
	if err := c.do(req, resty.MethodGet, "/api/pg/{id}"); err != nil {
		return nil, err
	}
	return &pg, nil
}

// SubmitInquiry validates locally so obviously bad input never leaves the web tier.
func (c *Client) SubmitInquiry(ctx context.Context, in services.InquiryInput) (*services.InquiryReceipt, error) {
	if err := services.ValidateInquiry(&in); err != nil {
		return nil, err
	}
	var out struct {
		Inquiry services.InquiryReceipt `json:"inquiry"`
	}
	req := c.http.R().SetContext(ctx).SetBody(in).SetResult(&out)
	if err := c.do(req, resty.MethodPost, "/api/inquiry"); err != nil {
		return nil, err
	}
	return &out.Inquiry, nil
}

func (c *Client) SubmitOnboarding(ctx context.Context, in services.OnboardingInput) (*services.OnboardingReceipt, error) {
	if err := services.ValidateOnboarding(&in); err != nil {
		return nil, err
	}
	var out struct {
		Request services.OnboardingReceipt `json:"request"`
	}
	req := c.http.R().SetContext(ctx).SetBody(in).SetResult(&out)
	if err := c.do(req, resty.MethodPost, "/api/owner-onboarding"); err != nil {
		return nil, err
	}
	return &out.Request, nil
}

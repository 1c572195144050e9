package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/models"
	"github.com/vnkhanh/pg-server/services"
)

// ListingReader serves the public listing pages. Implemented by
// services.ListingService and by the backend client in web mode.
type ListingReader interface {
	ListListings(ctx context.Context, q services.ListingQuery) (*services.ListingPage, error)
	FeaturedListings(ctx context.Context, limit int) ([]models.PG, error)
	GetListing(ctx context.Context, id string) (*models.PG, error)
}

type PGController struct {
	listings ListingReader
}

func NewPGController(listings ListingReader) *PGController {
	return &PGController{listings: listings}
}

// queryInt returns 0 for a missing or non-numeric value so the service default applies.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// GET /api/pg/listings
func (h *PGController) List(c *gin.Context) {
	page, err := h.listings.ListListings(c.Request.Context(), services.ListingQuery{
		Type:   c.Query("type"),
		City:   c.Query("city"),
		SortBy: c.Query("sortBy"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		respondError(c, err, "Failed to fetch PG listings")
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/pg/featured
func (h *PGController) Featured(c *gin.Context) {
	pgs, err := h.listings.FeaturedListings(c.Request.Context(), queryInt(c, "limit"))
	if err != nil {
		respondError(c, err, "Failed to fetch featured PGs")
		return
	}
	c.JSON(http.StatusOK, pgs)
}

// GET /api/pg/:id
func (h *PGController) Detail(c *gin.Context) {
	pg, err := h.listings.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch PG details")
		return
	}
	c.JSON(http.StatusOK, pg)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vnkhanh/pg-server/middleware"
	"github.com/vnkhanh/pg-server/services"
)

type statusError interface {
	error
	HTTPStatus() int
}

// respondError maps err onto the error taxonomy. Anything unclassified is
// logged and answered with fallback so internals never reach the client.
func respondError(c *gin.Context, err error, fallback string) {
	var vErr *services.ValidationError
	var remote statusError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &remote):
		c.JSON(remote.HTTPStatus(), gin.H{"error": remote.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": publicMessage(err, "Not found")})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": publicMessage(err, "Unauthorized")})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": publicMessage(err, "Forbidden")})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": publicMessage(err, "Conflict")})
	case errors.Is(err, services.ErrStorageUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": services.ErrStorageUnavailable.Error()})
	default:
		middleware.Logger(c).Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func publicMessage(err error, def string) string {
	var e *services.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return def
}

func badBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthController struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthController accepts nil for dependencies the run mode does not use.
func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{db: db, redis: rdb}
}

// GET /health
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	// Default: everything OK
	response := gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	}
	status := http.StatusOK

	if h.db != nil {
		response["db"] = "ok"
		sqlDB, err := h.db.DB()
		if err != nil {
			response["db"] = "error: cannot get DB instance"
			status = http.StatusInternalServerError
		} else if err := sqlDB.PingContext(ctx); err != nil {
			response["db"] = "error: cannot connect to DB"
			status = http.StatusInternalServerError
		}
	}

	if h.redis != nil {
		response["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			response["redis"] = "error: cannot connect to Redis"
			status = http.StatusInternalServerError
		}
	}

	if status != http.StatusOK {
		response["status"] = "error"
		response["message"] = "Service is unhealthy"
	}
	c.JSON(status, response)
}

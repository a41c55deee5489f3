package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/cache"
)

// HealthHandler reports service, database, and cache connectivity.
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.Client
	env   string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB, cache *cache.Client, env string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, env: env}
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Database    struct {
		Connected bool `json:"connected"`
	} `json:"database"`
	Cache struct {
		Connected bool `json:"connected"`
	} `json:"cache"`
}

// Health godoc
// @Summary Service health and datastore connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	resp := HealthResponse{
		Success:     true,
		Message:     "Travel Planner API is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.env,
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	resp.Database.Connected = err == nil

	// A broken cache degrades reads but does not take the service down.
	resp.Cache.Connected = h.cache.Ping(ctx) == nil

	if !resp.Database.Connected {
		resp.Success = false
		resp.Message = "Service unavailable - database connection issue"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

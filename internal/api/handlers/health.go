package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"currencyrates/internal/logging"
	"currencyrates/internal/models"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the API can reach its database
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

var _ Pinger = (*sql.DB)(nil)

// Health godoc
// @Summary Health check
// @Description Returns the health status of the API and its database
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.ErrorResponse "Service unavailable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logging.FromContext(c.Request.Context()).Error("Database ping failed", slog.Any("error", err))
		RespondError(c, http.StatusServiceUnavailable, "database connection failed")
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		Database: "up",
		Time:     time.Now().UTC(),
	})
}

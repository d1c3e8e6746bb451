// Package health serves the liveness and dependency probe.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/database/database"
)

// CheckTimeout bounds all dependency checks of one probe.
const CheckTimeout = 5 * time.Second

// Check probes one dependency.
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

// DatabaseCheck pings the database behind db.
func DatabaseCheck(db *gorm.DB) Check {
	return Check{
		Name: "database",
		Fn: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}
}

// Handler handles health check requests.
type Handler struct {
	checks []Check
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(logger *zap.SugaredLogger, checks ...Check) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health request.
// @Summary Service health
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), CheckTimeout)
	defer cancel()

	resp := Response{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	for _, check := range h.checks {
		if err := check.Fn(ctx); err != nil {
			h.logger.Warnw("health check failed", "check", check.Name, "error", err)
			resp.Status = "unhealthy"
			resp.Checks[check.Name] = "down"
			continue
		}
		resp.Checks[check.Name] = "up"
	}

	if resp.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes mounts GET /health.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Check)
}

// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/response"
	"github.com/festy23/challenge_tracker/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Overview handles GET /statistics/overview request.
// @Summary Dashboard counters
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.Overview
// @Failure 500 {object} response.ErrorResponse
// @Router /statistics/overview [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Overview(c *gin.Context) {
	stats, err := h.service.Overview(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting statistics overview", "error", err)
		response.Internal(c)
		return
	}

	c.JSON(http.StatusOK, stats)
}

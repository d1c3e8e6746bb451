// Package handler provides HTTP handlers for progress endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	challengeModel "github.com/festy23/challenge_tracker/internal/challenge/model"
	"github.com/festy23/challenge_tracker/internal/progress/model"
	"github.com/festy23/challenge_tracker/internal/progress/service"
	"github.com/festy23/challenge_tracker/internal/response"
	userModel "github.com/festy23/challenge_tracker/internal/user/model"
	"github.com/festy23/challenge_tracker/pkg/validation"
)

// Handler handles HTTP requests for progress endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new progress handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RecordProgress handles POST /progress request.
// A second submission for the same user, challenge and day adds to the stored value.
// @Summary Record daily progress
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body model.RecordRequest true "Request"
// @Success 201 {object} model.ProgressLog
// @Failure 400 {object} response.ErrorResponse "VALIDATION_ERROR, INVALID_REQUEST"
// @Failure 404 {object} response.ErrorResponse
// @Router /progress [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RecordProgress(c *gin.Context) {
	var req model.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	log, err := h.service.Record(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "error recording progress", err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// ListProgress handles GET /progress request.
// @Summary List progress logs by user and/or challenge
// @Tags Progress
// @Produce json
// @Param userId query string false "User ID"
// @Param challengeId query string false "Challenge ID"
// @Success 200 {array} model.ProgressLog
// @Failure 400 {object} response.ErrorResponse "INVALID_REQUEST"
// @Router /progress [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListProgress(c *gin.Context) {
	filter := model.ListFilter{
		UserID:      c.Query("userId"),
		ChallengeID: c.Query("challengeId"),
	}
	if filter.Empty() {
		response.InvalidRequest(c, "userId or challengeId query parameter is required")
		return
	}

	logs, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "error listing progress", err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// DeleteProgress handles DELETE /progress request.
// @Summary Delete a progress log
// @Tags Progress
// @Produce json
// @Param id query string true "Progress log ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse "INVALID_REQUEST"
// @Failure 404 {object} response.ErrorResponse
// @Router /progress [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteProgress(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.InvalidRequest(c, "id query parameter is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "error deleting progress", err)
		return
	}

	response.Success(c)
}

// RecentActivity handles GET /activity request.
// @Summary Latest progress logs, newest first
// @Tags Progress
// @Produce json
// @Param challengeId query string false "Challenge ID"
// @Success 200 {array} model.ActivityEntry
// @Failure 500 {object} response.ErrorResponse
// @Router /activity [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RecentActivity(c *gin.Context) {
	entries, err := h.service.RecentActivity(c.Request.Context(), c.Query("challengeId"))
	if err != nil {
		h.fail(c, "error listing activity", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UserProgress handles GET /users/:id/challenges/:challengeId/progress request.
// @Summary Progress summary of a user on a challenge
// @Tags Progress
// @Produce json
// @Param id path string true "User ID"
// @Param challengeId path string true "Challenge ID"
// @Success 200 {object} model.UserProgressResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id}/challenges/{challengeId}/progress [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UserProgress(c *gin.Context) {
	summary, err := h.service.UserProgress(c.Request.Context(), c.Param("id"), c.Param("challengeId"))
	if err != nil {
		h.fail(c, "error getting user progress", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	if vErr, ok := validation.As(err); ok {
		response.Validation(c, vErr)
		return
	}

	switch {
	case errors.Is(err, userModel.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, challengeModel.ErrChallengeNotFound):
		response.NotFound(c, "challenge not found")
	case errors.Is(err, model.ErrProgressLogNotFound):
		response.NotFound(c, "progress log not found")
	default:
		h.logger.Errorw(msg, "error", err)
		response.Internal(c)
	}
}

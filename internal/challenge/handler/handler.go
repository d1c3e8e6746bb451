// Package handler provides HTTP handlers for challenge endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/challenge/model"
	"github.com/festy23/challenge_tracker/internal/challenge/service"
	"github.com/festy23/challenge_tracker/internal/response"
	"github.com/festy23/challenge_tracker/pkg/validation"
)

// Handler handles HTTP requests for challenge endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new challenge handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListChallenges handles GET /challenges request.
// @Summary List challenges, optionally filtered by status
// @Tags Challenges
// @Produce json
// @Param filter query string false "active, past or upcoming"
// @Success 200 {array} model.ChallengeResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /challenges [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListChallenges(c *gin.Context) {
	filter := model.ParseFilter(c.Query("filter"))

	challenges, err := h.service.ListChallenges(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "error listing challenges", err)
		return
	}

	c.JSON(http.StatusOK, challenges)
}

// CreateChallenge handles POST /challenges request.
// @Summary Create a challenge
// @Tags Challenges
// @Accept json
// @Produce json
// @Param request body model.ChallengeRequest true "Request"
// @Success 201 {object} model.ChallengeResponse
// @Failure 400 {object} response.ErrorResponse "VALIDATION_ERROR, INVALID_REQUEST"
// @Router /challenges [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateChallenge(c *gin.Context) {
	var req model.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	challenge, err := h.service.CreateChallenge(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "error creating challenge", err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// GetChallenge handles GET /challenges/:id request.
// @Summary Get a challenge with status and participant count
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} model.ChallengeDetailResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /challenges/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetChallenge(c *gin.Context) {
	challenge, err := h.service.GetChallenge(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "error getting challenge", err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// UpdateChallenge handles PUT /challenges/:id request.
// @Summary Update a challenge
// @Tags Challenges
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body model.ChallengeRequest true "Request"
// @Success 200 {object} model.ChallengeResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /challenges/{id} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateChallenge(c *gin.Context) {
	var req model.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	challenge, err := h.service.UpdateChallenge(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "error updating challenge", err)
		return
	}

	c.JSON(http.StatusOK, challenge)
}

// DeleteChallenge handles DELETE /challenges/:id request.
// Progress logs of the challenge are removed as well.
// @Summary Delete a challenge
// @Tags Challenges
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /challenges/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteChallenge(c *gin.Context) {
	if err := h.service.DeleteChallenge(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "error deleting challenge", err)
		return
	}

	response.Success(c)
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	if vErr, ok := validation.As(err); ok {
		response.Validation(c, vErr)
		return
	}
	if errors.Is(err, model.ErrChallengeNotFound) {
		response.NotFound(c, "challenge not found")
		return
	}
	h.logger.Errorw(msg, "challenge_id", c.Param("id"), "error", err)
	response.Internal(c)
}

// Package handler provides HTTP handlers for leaderboard endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	challengeModel "github.com/festy23/challenge_tracker/internal/challenge/model"
	"github.com/festy23/challenge_tracker/internal/leaderboard/service"
	"github.com/festy23/challenge_tracker/internal/response"
	teamModel "github.com/festy23/challenge_tracker/internal/team/model"
)

// Handler handles HTTP requests for leaderboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new leaderboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Individual handles GET /challenges/:id/leaderboard/individual request.
// @Summary Individual leaderboard of a challenge
// @Tags Leaderboards
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} model.IndividualResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /challenges/{id}/leaderboard/individual [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Individual(c *gin.Context) {
	board, err := h.service.Individual(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "error building individual leaderboard", err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// Teams handles GET /challenges/:id/leaderboard/teams request.
// @Summary Team leaderboard of a challenge, by mean member total
// @Tags Leaderboards
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} model.TeamResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /challenges/{id}/leaderboard/teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Teams(c *gin.Context) {
	board, err := h.service.Teams(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "error building team leaderboard", err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// TeamInternal handles GET /teams/:id/leaderboard request.
// @Summary Leaderboard of the members of a team for a challenge
// @Tags Leaderboards
// @Produce json
// @Param id path string true "Team ID"
// @Param challengeId query string true "Challenge ID"
// @Success 200 {object} model.TeamInternalResponse
// @Failure 400 {object} response.ErrorResponse "INVALID_REQUEST"
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id}/leaderboard [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) TeamInternal(c *gin.Context) {
	challengeID := c.Query("challengeId")
	if challengeID == "" {
		response.InvalidRequest(c, "challengeId query parameter is required")
		return
	}

	board, err := h.service.TeamInternal(c.Request.Context(), c.Param("id"), challengeID)
	if err != nil {
		h.fail(c, "error building team member leaderboard", err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, challengeModel.ErrChallengeNotFound):
		response.NotFound(c, "challenge not found")
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	default:
		h.logger.Errorw(msg, "id", c.Param("id"), "error", err)
		response.Internal(c)
	}
}

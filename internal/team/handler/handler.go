// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/response"
	teamModel "github.com/festy23/challenge_tracker/internal/team/model"
	"github.com/festy23/challenge_tracker/internal/team/service"
	userModel "github.com/festy23/challenge_tracker/internal/user/model"
	"github.com/festy23/challenge_tracker/pkg/validation"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTeams handles GET /teams request.
// @Summary List teams with members
// @Tags Teams
// @Produce json
// @Success 200 {array} teamModel.TeamResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.fail(c, "error listing teams", err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// CreateTeam handles POST /teams request.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body teamModel.CreateTeamRequest true "Request"
// @Success 201 {object} teamModel.Team
// @Failure 400 {object} response.ErrorResponse "VALIDATION_ERROR, INVALID_REQUEST"
// @Router /teams [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "error creating team", err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id request.
// @Summary Get a team with members
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} teamModel.TeamResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeam(c *gin.Context) {
	team, err := h.service.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "error getting team", err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id request.
// @Summary Rename a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body teamModel.UpdateTeamRequest true "Request"
// @Success 200 {object} teamModel.Team
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateTeam(c *gin.Context) {
	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "error updating team", err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id request.
// @Summary Delete a team, keeping its users
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteTeam(c *gin.Context) {
	if err := h.service.DeleteTeam(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "error deleting team", err)
		return
	}

	response.Success(c)
}

// AddMember handles POST /teams/:id/members request.
// @Summary Add a user to a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body teamModel.AddMemberRequest true "Request"
// @Success 201 {object} teamModel.TeamMember
// @Failure 400 {object} response.ErrorResponse "VALIDATION_ERROR, CONFLICT"
// @Failure 404 {object} response.ErrorResponse "Team or user not found"
// @Router /teams/{id}/members [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) AddMember(c *gin.Context) {
	var req teamModel.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	member, err := h.service.AddMember(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "error adding team member", err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /teams/:id/members/:userId request.
// @Summary Remove a user from a team
// @Tags Teams
// @Produce json
// @Param id path string true "Team ID"
// @Param userId path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id}/members/{userId} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RemoveMember(c *gin.Context) {
	if err := h.service.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		h.fail(c, "error removing team member", err)
		return
	}

	response.Success(c)
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	if vErr, ok := validation.As(err); ok {
		response.Validation(c, vErr)
		return
	}

	switch {
	case errors.Is(err, teamModel.ErrTeamNotFound):
		response.NotFound(c, "team not found")
	case errors.Is(err, userModel.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, teamModel.ErrMembershipNotFound):
		response.NotFound(c, "user is not a member of this team")
	case errors.Is(err, teamModel.ErrMemberExists):
		response.Conflict(c, "User is already a member of this team")
	default:
		h.logger.Errorw(msg, "team_id", c.Param("id"), "error", err)
		response.Internal(c)
	}
}

// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/response"
	"github.com/festy23/challenge_tracker/internal/user/model"
	"github.com/festy23/challenge_tracker/internal/user/service"
	"github.com/festy23/challenge_tracker/pkg/validation"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListUsers handles GET /users request.
// @Summary List users with team memberships and progress log counts
// @Tags Users
// @Produce json
// @Success 200 {array} model.UserResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, "error listing users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /users request.
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.CreateUserRequest true "Request"
// @Success 201 {object} model.User
// @Failure 400 {object} response.ErrorResponse "VALIDATION_ERROR, INVALID_REQUEST"
// @Router /users [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "error creating user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:id request.
// @Summary Get a user with memberships and progress logs
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.UserDetailResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "error getting user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id request.
// @Summary Rename a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body model.UpdateUserRequest true "Request"
// @Success 200 {object} model.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [put] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) UpdateUser(c *gin.Context) {
	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.fail(c, "error updating user", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id request.
// Team memberships and progress logs of the user are removed as well.
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "error deleting user", err)
		return
	}

	response.Success(c)
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	if vErr, ok := validation.As(err); ok {
		response.Validation(c, vErr)
		return
	}
	if errors.Is(err, model.ErrUserNotFound) {
		response.NotFound(c, "user not found")
		return
	}
	h.logger.Errorw(msg, "user_id", c.Param("id"), "error", err)
	response.Internal(c)
}

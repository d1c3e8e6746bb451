// Package response writes the JSON error envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/challenge_tracker/pkg/validation"
)

// Error codes.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes the failure.
type ErrorBody struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []validation.FieldError `json:"details,omitempty"`
}

// SuccessResponse is returned by delete endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Error aborts the request with the given status and error body.
func Error(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// Validation writes a 400 VALIDATION_ERROR listing every invalid field.
func Validation(c *gin.Context, vErr *validation.Error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    CodeValidation,
		Message: vErr.Message(),
		Details: vErr.Fields,
	}})
}

// InvalidRequest writes a 400 INVALID_REQUEST.
func InvalidRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// NotFound writes a 404 NOT_FOUND.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict writes a 400 CONFLICT.
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeConflict, message)
}

// Internal writes a generic 500 that never leaks store details.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// BindError reports a ShouldBind* failure: field-level problems become
// VALIDATION_ERROR, anything else (malformed JSON) INVALID_REQUEST.
func BindError(c *gin.Context, err error) {
	if vErr := validation.FromBinding(err); vErr != nil {
		Validation(c, vErr)
		return
	}
	InvalidRequest(c, "invalid request body")
}

// Success writes 200 {"success": true}.
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

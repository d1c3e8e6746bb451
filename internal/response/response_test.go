package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/challenge_tracker/pkg/validation"
)

func serve(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	write(c)

	var body ErrorResponse
	if w.Code >= http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		write      func(c *gin.Context)
		wantStatus int
		wantCode   string
	}{
		{name: "not found", write: func(c *gin.Context) { NotFound(c, "user not found") }, wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
		{name: "conflict", write: func(c *gin.Context) { Conflict(c, "duplicate") }, wantStatus: http.StatusBadRequest, wantCode: CodeConflict},
		{name: "invalid request", write: func(c *gin.Context) { InvalidRequest(c, "id is required") }, wantStatus: http.StatusBadRequest, wantCode: CodeInvalidRequest},
		{name: "internal", write: Internal, wantStatus: http.StatusInternalServerError, wantCode: CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(t, tt.write)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
			assert.Empty(t, body.Error.Details)
		})
	}
}

func TestValidation(t *testing.T) {
	vErr := validation.NewError("endDate", "End date must be after start date")
	vErr.Add("title", "Title is required")

	w, body := serve(t, func(c *gin.Context) { Validation(c, vErr) })

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeValidation, body.Error.Code)
	assert.Equal(t, "End date must be after start date", body.Error.Message)
	assert.Equal(t, []validation.FieldError{
		{Field: "endDate", Message: "End date must be after start date"},
		{Field: "title", Message: "Title is required"},
	}, body.Error.Details)
}

func TestBindError(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		w, body := serve(t, func(c *gin.Context) { BindError(c, errors.New("unexpected EOF")) })
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeInvalidRequest, body.Error.Code)
	})
}

func TestSuccess(t *testing.T) {
	w, _ := serve(t, Success)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

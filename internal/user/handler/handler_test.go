package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/response"
	"github.com/festy23/challenge_tracker/internal/user/model"
	"github.com/festy23/challenge_tracker/internal/user/service"
	"github.com/festy23/challenge_tracker/pkg/validation"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockService) GetUser(ctx context.Context, id string) (*model.UserDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserDetailResponse), args.Error(1)
}

func (m *mockService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserResponse), args.Error(1)
}

func (m *mockService) UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(svc, zap.NewNop().Sugar())
	router := gin.New()
	router.GET("/users", h.ListUsers)
	router.POST("/users", h.CreateUser)
	router.GET("/users/:id", h.GetUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/:id", h.DeleteUser)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestHandler_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CreateUser", mock.Anything, &model.CreateUserRequest{Name: "Alice"}).
			Return(&model.User{ID: "u1", Name: "Alice"}, nil)

		w := do(setupRouter(svc), http.MethodPost, "/users", `{"name":"Alice"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "u1", got.ID)
		assert.Equal(t, "Alice", got.Name)
		svc.AssertExpectations(t)
	})

	t.Run("name at the limit in multibyte characters", func(t *testing.T) {
		svc := new(mockService)
		name := strings.Repeat("ж", model.MaxNameLength)
		svc.On("CreateUser", mock.Anything, &model.CreateUserRequest{Name: name}).
			Return(&model.User{ID: "u1", Name: name}, nil)

		w := do(setupRouter(svc), http.MethodPost, "/users", `{"name":"`+name+`"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "missing name", body: `{}`, message: "is required"},
		{name: "empty name", body: `{"name":""}`, message: "is required"},
		{name: "blank name", body: `{"name":" \t "}`, message: "must not be blank"},
		{
			name:    "name too long",
			body:    `{"name":"` + strings.Repeat("x", model.MaxNameLength+1) + `"}`,
			message: "must be 100 characters or less",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)

			w := do(setupRouter(svc), http.MethodPost, "/users", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, response.CodeValidation, body.Code)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, []validation.FieldError{{Field: "name", Message: tt.message}}, body.Details)
			svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockService)

		w := do(setupRouter(svc), http.MethodPost, "/users", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, response.CodeInvalidRequest, decodeError(t, w).Code)
		svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestHandler_ListUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListUsers", mock.Anything).Return([]model.UserResponse{
			{User: model.User{ID: "u1", Name: "Alice"}, TeamMemberships: []model.TeamMembership{}, ProgressLogCount: 3},
		}, nil)

		w := do(setupRouter(svc), http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Alice", got[0]["name"])
		assert.Equal(t, 3.0, got[0]["progressLogCount"])
		assert.Equal(t, []any{}, got[0]["teamMemberships"])
	})

	t.Run("store error is hidden", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListUsers", mock.Anything).Return(nil, errors.New("connection reset"))

		w := do(setupRouter(svc), http.MethodGet, "/users", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, response.CodeInternal, body.Code)
		assert.NotContains(t, body.Message, "connection reset")
	})
}

func TestHandler_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetUser", mock.Anything, "u1").Return(&model.UserDetailResponse{
			User:            model.User{ID: "u1", Name: "Alice"},
			TeamMemberships: []model.TeamMembership{{ID: "m1", TeamID: "t1", TeamName: "Red"}},
			ProgressLogs:    []model.ProgressEntry{},
		}, nil)

		w := do(setupRouter(svc), http.MethodGet, "/users/u1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"teamName":"Red"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("GetUser", mock.Anything, "missing").Return(nil, model.ErrUserNotFound)

		w := do(setupRouter(svc), http.MethodGet, "/users/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, response.CodeNotFound, body.Code)
		assert.Equal(t, "user not found", body.Message)
	})
}

func TestHandler_UpdateUser(t *testing.T) {
	t.Run("renamed", func(t *testing.T) {
		svc := new(mockService)
		svc.On("UpdateUser", mock.Anything, "u1", &model.UpdateUserRequest{Name: "Alicia"}).
			Return(&model.User{ID: "u1", Name: "Alicia"}, nil)

		w := do(setupRouter(svc), http.MethodPut, "/users/u1", `{"name":"Alicia"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Alicia"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("UpdateUser", mock.Anything, "missing", mock.Anything).Return(nil, model.ErrUserNotFound)

		w := do(setupRouter(svc), http.MethodPut, "/users/missing", `{"name":"x"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := new(mockService)

		w := do(setupRouter(svc), http.MethodPut, "/users/u1", `{"name":"   "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []validation.FieldError{{Field: "name", Message: "must not be blank"}}, decodeError(t, w).Details)
		svc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandler_DeleteUser(t *testing.T) {
	svc := new(mockService)
	svc.On("DeleteUser", mock.Anything, "u1").Return(nil)
	svc.On("DeleteUser", mock.Anything, "missing").Return(model.ErrUserNotFound)
	router := setupRouter(svc)

	w := do(router, http.MethodDelete, "/users/u1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(router, http.MethodDelete, "/users/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

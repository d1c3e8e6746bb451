package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/response"
	"github.com/festy23/challenge_tracker/internal/statistics/model"
	"github.com/festy23/challenge_tracker/internal/statistics/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Overview(ctx context.Context) (*model.Overview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Overview), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/statistics/overview", New(svc, zap.NewNop().Sugar()).Overview)
	return router
}

func TestHandler_Overview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Overview", mock.Anything).Return(&model.Overview{
			Users:            3,
			Teams:            1,
			Challenges:       2,
			ActiveChallenges: 1,
			ProgressLogs:     7,
			TotalValue:       420.5,
		}, nil)

		w := httptest.NewRecorder()
		setupRouter(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/statistics/overview", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 3.0, body["users"])
		assert.Equal(t, 1.0, body["activeChallenges"])
		assert.Equal(t, 7.0, body["progressLogs"])
		assert.Equal(t, 420.5, body["totalValue"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(mockService)
		mockSvc.On("Overview", mock.Anything).Return(nil, errors.New("database error"))

		w := httptest.NewRecorder()
		setupRouter(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/statistics/overview", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, response.CodeInternal, body.Error.Code)
		assert.NotContains(t, w.Body.String(), "database error")
	})
}

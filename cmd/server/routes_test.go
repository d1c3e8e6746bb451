package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/challenge_tracker/internal/events"
	"github.com/festy23/challenge_tracker/internal/testutil"
)

type client struct {
	t      *testing.T
	router *gin.Engine
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	return &client{t: t, router: setupRouter(db, events.NewNoop(), time.UTC, testutil.Logger(t))}
}

func (c *client) send(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *client) create(path string, body any) string {
	c.t.Helper()
	w := c.send(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type leaderboardBody struct {
	Leaderboard []struct {
		Rank         int     `json:"rank"`
		UserID       string  `json:"userId"`
		TeamID       string  `json:"teamId"`
		TotalValue   float64 `json:"totalValue"`
		AverageValue float64 `json:"averageValue"`
	} `json:"leaderboard"`
}

func TestRoutes_ProgressScenario(t *testing.T) {
	c := newClient(t)

	userID := c.create("/users", map[string]string{"name": "U"})
	challengeID := c.create("/challenges", map[string]string{
		"title":       "C",
		"description": "A week of running",
		"startDate":   "2024-01-01",
		"endDate":     "2024-01-07",
	})

	first := c.create("/progress", map[string]any{
		"userId": userID, "challengeId": challengeID, "date": "2024-01-03", "value": 100,
	})
	second := c.create("/progress", map[string]any{
		"userId": userID, "challengeId": challengeID, "date": "2024-01-03", "value": 50,
	})
	assert.Equal(t, first, second, "same day accumulates into one log")

	w := c.send(http.MethodGet, "/progress?userId="+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[[]struct {
		Value float64 `json:"value"`
	}](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, 150.0, logs[0].Value)

	w = c.send(http.MethodPost, "/progress", map[string]any{
		"userId": userID, "challengeId": challengeID, "date": "2024-01-10", "value": 20,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"VALIDATION_ERROR"`)

	w = c.send(http.MethodGet, "/challenges/"+challengeID+"/leaderboard/individual", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[leaderboardBody](t, w)
	require.Len(t, board.Leaderboard, 1)
	assert.Equal(t, 1, board.Leaderboard[0].Rank)
	assert.Equal(t, userID, board.Leaderboard[0].UserID)
	assert.Equal(t, 150.0, board.Leaderboard[0].TotalValue)
}

func TestRoutes_TeamLeaderboard(t *testing.T) {
	c := newClient(t)

	alice := c.create("/users", map[string]string{"name": "Alice"})
	bob := c.create("/users", map[string]string{"name": "Bob"})
	carol := c.create("/users", map[string]string{"name": "Carol"})
	duo := c.create("/teams", map[string]string{"name": "Duo"})
	solo := c.create("/teams", map[string]string{"name": "Solo"})
	c.create("/teams", map[string]string{"name": "Nobody"})
	c.create("/teams/"+duo+"/members", map[string]string{"userId": alice})
	c.create("/teams/"+duo+"/members", map[string]string{"userId": bob})
	c.create("/teams/"+solo+"/members", map[string]string{"userId": carol})

	challengeID := c.create("/challenges", map[string]string{
		"title": "Steps", "description": "Walk", "startDate": "2024-03-01", "endDate": "2024-03-31",
	})
	for _, p := range []struct {
		user  string
		value float64
	}{{alice, 30}, {bob, 10}, {carol, 15}} {
		c.create("/progress", map[string]any{
			"userId": p.user, "challengeId": challengeID, "date": "2024-03-15", "value": p.value,
		})
	}

	w := c.send(http.MethodGet, "/challenges/"+challengeID+"/leaderboard/teams", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[leaderboardBody](t, w)
	require.Len(t, board.Leaderboard, 2, "teams without members are not ranked")
	assert.Equal(t, duo, board.Leaderboard[0].TeamID)
	assert.Equal(t, 20.0, board.Leaderboard[0].AverageValue)
	assert.Equal(t, solo, board.Leaderboard[1].TeamID)
	assert.Equal(t, 2, board.Leaderboard[1].Rank)

	w = c.send(http.MethodGet, "/teams/"+duo+"/leaderboard?challengeId="+challengeID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	internal := decode[leaderboardBody](t, w)
	require.Len(t, internal.Leaderboard, 2)
	assert.Equal(t, alice, internal.Leaderboard[0].UserID)
	assert.Equal(t, bob, internal.Leaderboard[1].UserID)
}

func TestRoutes_ChallengeFilterAndDelete(t *testing.T) {
	c := newClient(t)

	now := time.Now().UTC()
	past := c.create("/challenges", map[string]string{
		"title": "Past", "description": "d",
		"startDate": now.AddDate(0, 0, -20).Format(time.RFC3339),
		"endDate":   now.AddDate(0, 0, -10).Format(time.RFC3339),
	})
	active := c.create("/challenges", map[string]string{
		"title": "Active", "description": "d",
		"startDate": now.AddDate(0, 0, -1).Format(time.RFC3339),
		"endDate":   now.AddDate(0, 0, 1).Format(time.RFC3339),
	})

	w := c.send(http.MethodGet, "/challenges?filter=active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, active, list[0].ID)
	assert.Equal(t, "active", list[0].Status)

	w = c.send(http.MethodGet, "/challenges?filter=past", nil)
	list = decode[[]struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, past, list[0].ID)

	w = c.send(http.MethodDelete, "/challenges/"+past, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = c.send(http.MethodDelete, "/challenges/"+past, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
}

func TestRoutes_HealthAndStatistics(t *testing.T) {
	c := newClient(t)
	c.create("/users", map[string]string{"name": "Alice"})

	w := c.send(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = c.send(http.MethodGet, "/statistics/overview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"users":1`)

	w = c.send(http.MethodGet, "/users", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

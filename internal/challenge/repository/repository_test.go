package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festy23/challenge_tracker/internal/challenge/model"
	progressModel "github.com/festy23/challenge_tracker/internal/progress/model"
	"github.com/festy23/challenge_tracker/internal/testutil"
)

func titles(challenges []model.Challenge) []string {
	out := make([]string, len(challenges))
	for i, c := range challenges {
		out[i] = c.Title
	}
	return out
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	moscow := time.FixedZone("MSK", 3*3600)
	challenge := &model.Challenge{
		Title:       "Run 100km",
		Description: "Run every day",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, moscow),
		EndDate:     time.Date(2024, 1, 31, 0, 0, 0, 0, moscow),
	}
	require.NoError(t, repo.Create(ctx, challenge))
	assert.NotEmpty(t, challenge.ID)

	got, err := repo.GetByID(ctx, challenge.ID)
	require.NoError(t, err)
	assert.Equal(t, "Run 100km", got.Title)
	assert.True(t, got.StartDate.Equal(time.Date(2023, 12, 31, 21, 0, 0, 0, time.UTC)))

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrChallengeNotFound)
}

func TestRepository_List(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	testutil.CreateChallenge(t, db, "past", now.AddDate(0, 0, -20), now.Add(-time.Second))
	testutil.CreateChallenge(t, db, "ends now", now.AddDate(0, 0, -10), now)
	testutil.CreateChallenge(t, db, "starts now", now, now.AddDate(0, 0, 10))
	testutil.CreateChallenge(t, db, "upcoming", now.Add(time.Second), now.AddDate(0, 0, 5))

	tests := []struct {
		filter model.Filter
		want   []string
	}{
		{filter: model.FilterAll, want: []string{"upcoming", "starts now", "ends now", "past"}},
		{filter: model.FilterActive, want: []string{"starts now", "ends now"}},
		{filter: model.FilterPast, want: []string{"past"}},
		{filter: model.FilterUpcoming, want: []string{"upcoming"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(got))

			for _, c := range got {
				assert.True(t, tt.filter.Matches(c.StatusAt(now)), "%s is %s", c.Title, c.StatusAt(now))
			}
		})
	}
}

func TestRepository_List_Empty(t *testing.T) {
	repo := New(testutil.NewDB(t), testutil.Logger(t))

	got, err := repo.List(context.Background(), model.FilterAll, time.Now())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_Update(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	c := testutil.CreateChallenge(t, db, "old", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))

	err := repo.Update(ctx, &model.Challenge{
		ID:          c.ID,
		Title:       "new",
		Description: "new description",
		StartDate:   testutil.Date(t, "2024-02-01"),
		EndDate:     testutil.Date(t, "2024-02-07"),
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "new description", got.Description)
	assert.True(t, got.StartDate.Equal(testutil.Date(t, "2024-02-01")))
	assert.True(t, got.EndDate.Equal(testutil.Date(t, "2024-02-07")))

	err = repo.Update(ctx, &model.Challenge{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, model.ErrChallengeNotFound)
}

func TestRepository_Delete_CascadesToProgressLogs(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "Alice")
	c := testutil.CreateChallenge(t, db, "c", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))
	other := testutil.CreateChallenge(t, db, "other", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))
	testutil.CreateLog(t, db, user, c, "2024-01-02", 1)
	testutil.CreateLog(t, db, user, other, "2024-01-02", 1)

	require.NoError(t, repo.Delete(ctx, c.ID))

	var remaining int64
	require.NoError(t, db.Model(&progressModel.ProgressLog{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	assert.ErrorIs(t, repo.Delete(ctx, c.ID), model.ErrChallengeNotFound)
}

func TestRepository_Counts(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")
	c := testutil.CreateChallenge(t, db, "c", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))
	quiet := testutil.CreateChallenge(t, db, "quiet", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))
	testutil.CreateLog(t, db, alice, c, "2024-01-02", 1)
	testutil.CreateLog(t, db, alice, c, "2024-01-03", 2)
	testutil.CreateLog(t, db, bob, c, "2024-01-03", 3)

	counts, err := repo.CountProgressLogs(ctx, []string{c.ID, quiet.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[c.ID])
	assert.Zero(t, counts[quiet.ID])

	empty, err := repo.CountProgressLogs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	participants, err := repo.CountParticipants(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), participants)

	participants, err = repo.CountParticipants(ctx, quiet.ID)
	require.NoError(t, err)
	assert.Zero(t, participants)
}

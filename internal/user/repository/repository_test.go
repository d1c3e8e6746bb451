package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	progressModel "github.com/festy23/challenge_tracker/internal/progress/model"
	teamModel "github.com/festy23/challenge_tracker/internal/team/model"
	"github.com/festy23/challenge_tracker/internal/testutil"
	"github.com/festy23/challenge_tracker/internal/user/model"
)

func TestRepository_CreateGetList(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	alice := &model.User{Name: "Alice"}
	require.NoError(t, repo.Create(ctx, alice))
	assert.Len(t, alice.ID, 36)
	assert.False(t, alice.CreatedAt.IsZero())

	bob := &model.User{Name: "Bob"}
	require.NoError(t, repo.Create(ctx, bob))

	got, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, []string{users[0].Name, users[1].Name})
}

func TestRepository_UpdateName(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "Alice")

	updated, err := repo.UpdateName(ctx, user.ID, "Alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, user.ID, updated.ID)

	_, err = repo.UpdateName(ctx, "missing", "x")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestRepository_Delete_Cascades(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")
	team := testutil.CreateTeam(t, db, "Team", alice, bob)
	c := testutil.CreateChallenge(t, db, "c", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))
	testutil.CreateLog(t, db, alice, c, "2024-01-02", 1)
	testutil.CreateLog(t, db, bob, c, "2024-01-02", 1)

	require.NoError(t, repo.Delete(ctx, alice.ID))

	var members, logs, teams int64
	require.NoError(t, db.Model(&teamModel.TeamMember{}).Count(&members).Error)
	require.NoError(t, db.Model(&progressModel.ProgressLog{}).Count(&logs).Error)
	require.NoError(t, db.Model(&teamModel.Team{}).Where("id = ?", team.ID).Count(&teams).Error)
	assert.Equal(t, int64(1), members)
	assert.Equal(t, int64(1), logs)
	assert.Equal(t, int64(1), teams, "teams outlive their members")

	assert.ErrorIs(t, repo.Delete(ctx, alice.ID), model.ErrUserNotFound)
}

func TestRepository_ListMemberships(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")
	loner := testutil.CreateUser(t, db, "Loner")
	red := testutil.CreateTeam(t, db, "Red", alice)
	blue := testutil.CreateTeam(t, db, "Blue", alice, bob)

	memberships, err := repo.ListMemberships(ctx, []string{alice.ID, bob.ID, loner.ID})
	require.NoError(t, err)

	require.Len(t, memberships[alice.ID], 2)
	assert.Equal(t, red.ID, memberships[alice.ID][0].TeamID)
	assert.Equal(t, "Red", memberships[alice.ID][0].TeamName)
	assert.Equal(t, blue.ID, memberships[alice.ID][1].TeamID)
	assert.False(t, memberships[alice.ID][0].JoinedAt.IsZero())
	require.Len(t, memberships[bob.ID], 1)
	assert.Empty(t, memberships[loner.ID])

	empty, err := repo.ListMemberships(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_ProgressLogs(t *testing.T) {
	db := testutil.NewDB(t)
	repo := New(db, testutil.Logger(t))
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")
	run := testutil.CreateChallenge(t, db, "Run", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))
	swim := testutil.CreateChallenge(t, db, "Swim", testutil.Date(t, "2024-01-01"), testutil.Date(t, "2024-01-07"))
	testutil.CreateLog(t, db, alice, run, "2024-01-02", 5)
	testutil.CreateLog(t, db, alice, swim, "2024-01-04", 2)
	testutil.CreateLog(t, db, alice, run, "2024-01-03", 7)

	counts, err := repo.CountProgressLogs(ctx, []string{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[alice.ID])
	assert.Zero(t, counts[bob.ID])

	entries, err := repo.ListProgressEntries(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Swim", entries[0].ChallengeTitle)
	assert.Equal(t, 2.0, entries[0].Value)
	assert.Equal(t, "2024-01-03", entries[1].Date.Format("2006-01-02"))
	assert.Equal(t, run.ID, entries[2].ChallengeID)

	none, err := repo.ListProgressEntries(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

// Package testutil provides an in-memory SQLite database with the full
// schema for package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	challengeModel "github.com/festy23/challenge_tracker/internal/challenge/model"
	progressModel "github.com/festy23/challenge_tracker/internal/progress/model"
	teamModel "github.com/festy23/challenge_tracker/internal/team/model"
	userModel "github.com/festy23/challenge_tracker/internal/user/model"
)

// NewDB opens a private in-memory database with foreign keys enabled and
// migrates every model. It is closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=1"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&userModel.User{},
		&teamModel.Team{},
		&teamModel.TeamMember{},
		&challengeModel.Challenge{},
		&progressModel.ProgressLog{},
	))

	return db
}

// Logger returns a logger that writes through t.
func Logger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel)).Sugar()
}

// CreateUser inserts a user with the given name.
func CreateUser(t *testing.T, db *gorm.DB, name string) *userModel.User {
	t.Helper()
	user := &userModel.User{Name: name}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTeam inserts a team and adds members to it in order.
func CreateTeam(t *testing.T, db *gorm.DB, name string, members ...*userModel.User) *teamModel.Team {
	t.Helper()
	team := &teamModel.Team{Name: name}
	require.NoError(t, db.Create(team).Error)
	for _, u := range members {
		AddMember(t, db, team, u)
	}
	return team
}

// AddMember adds user to team.
func AddMember(t *testing.T, db *gorm.DB, team *teamModel.Team, user *userModel.User) *teamModel.TeamMember {
	t.Helper()
	member := &teamModel.TeamMember{TeamID: team.ID, UserID: user.ID}
	require.NoError(t, db.Omit("User", "Team").Create(member).Error)
	return member
}

// CreateChallenge inserts a challenge spanning [start, end].
func CreateChallenge(t *testing.T, db *gorm.DB, title string, start, end time.Time) *challengeModel.Challenge {
	t.Helper()
	challenge := &challengeModel.Challenge{
		Title:       title,
		Description: title + " description",
		StartDate:   start,
		EndDate:     end,
	}
	require.NoError(t, db.Create(challenge).Error)
	return challenge
}

// CreateLog inserts a progress log for the given UTC calendar day.
func CreateLog(
	t *testing.T,
	db *gorm.DB,
	user *userModel.User,
	challenge *challengeModel.Challenge,
	day string,
	value float64,
) *progressModel.ProgressLog {
	t.Helper()
	date, err := time.Parse(time.DateOnly, day)
	require.NoError(t, err)
	log := &progressModel.ProgressLog{
		UserID:      user.ID,
		ChallengeID: challenge.ID,
		Date:        date,
		Value:       value,
	}
	require.NoError(t, db.Omit("User", "Challenge").Create(log).Error)
	return log
}

// Date parses an RFC 3339 timestamp or a "2006-01-02" day in UTC.
func Date(t *testing.T, raw string) time.Time {
	t.Helper()
	if d, err := time.Parse(time.DateOnly, raw); err == nil {
		return d
	}
	d, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
	return d
}

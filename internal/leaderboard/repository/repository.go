// Package repository provides the aggregate queries behind leaderboards.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/leaderboard/model"
)

// Repository defines the read-only queries used to build leaderboards.
type Repository interface {
	// UserTotals returns the summed value per user for the challenge. Users
	// without logs for the challenge are absent.
	UserTotals(ctx context.Context, challengeID string) ([]model.UserTotal, error)

	// Members returns every team membership, or only those of teamID when
	// it is not empty.
	Members(ctx context.Context, teamID string) ([]model.Member, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new leaderboard repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// UserTotals returns the summed value per user for the challenge.
func (r *repository) UserTotals(ctx context.Context, challengeID string) ([]model.UserTotal, error) {
	r.logger.Debugw("UserTotals called", "challenge_id", challengeID)

	totals := []model.UserTotal{}
	err := r.db.WithContext(ctx).
		Table("progress_logs AS pl").
		Select("pl.user_id AS user_id, u.name AS user_name, SUM(pl.value) AS total").
		Joins("JOIN users AS u ON u.id = pl.user_id").
		Where("pl.challenge_id = ?", challengeID).
		Group("pl.user_id, u.name").
		Scan(&totals).Error

	if err != nil {
		r.logger.Errorw("UserTotals database error", "challenge_id", challengeID, "error", err)
		return nil, fmt.Errorf("sum progress per user: %w", err)
	}

	return totals, nil
}

// Members returns team memberships with team and user names.
func (r *repository) Members(ctx context.Context, teamID string) ([]model.Member, error) {
	r.logger.Debugw("Members called", "team_id", teamID)

	query := r.db.WithContext(ctx).
		Table("team_members AS tm").
		Select("tm.team_id AS team_id, t.name AS team_name, tm.user_id AS user_id, u.name AS user_name").
		Joins("JOIN teams AS t ON t.id = tm.team_id").
		Joins("JOIN users AS u ON u.id = tm.user_id")

	if teamID != "" {
		query = query.Where("tm.team_id = ?", teamID)
	}

	members := []model.Member{}
	if err := query.Order("tm.team_id ASC").Order("tm.user_id ASC").Scan(&members).Error; err != nil {
		r.logger.Errorw("Members database error", "team_id", teamID, "error", err)
		return nil, fmt.Errorf("list team members: %w", err)
	}

	return members, nil
}

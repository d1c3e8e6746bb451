// Package repository provides data access layer for statistics module.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// Overview counts the stored entities, classifying challenges at now.
	Overview(ctx context.Context, now time.Time) (*model.Overview, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Overview counts the stored entities in a single round trip. Challenge
// buckets use the same bounds as the challenge filter.
func (r *repository) Overview(ctx context.Context, now time.Time) (*model.Overview, error) {
	r.logger.Debugw("Overview called")

	now = now.UTC()
	var stats model.Overview
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				(SELECT COUNT(*) FROM users) AS users,
				(SELECT COUNT(*) FROM teams) AS teams,
				(SELECT COUNT(*) FROM challenges) AS challenges,
				(SELECT COUNT(*) FROM challenges WHERE start_date <= ? AND end_date >= ?) AS active_challenges,
				(SELECT COUNT(*) FROM challenges WHERE start_date > ?) AS upcoming_challenges,
				(SELECT COUNT(*) FROM challenges WHERE end_date < ?) AS past_challenges,
				(SELECT COUNT(*) FROM progress_logs) AS progress_logs,
				(SELECT COUNT(DISTINCT user_id) FROM progress_logs) AS participants,
				(SELECT COALESCE(SUM(value), 0) FROM progress_logs) AS total_value
		`, now, now, now, now).
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("Overview database error", "error", err)
		return nil, fmt.Errorf("count overview: %w", err)
	}

	r.logger.Debugw("Overview completed", "users", stats.Users, "challenges", stats.Challenges)
	return &stats, nil
}

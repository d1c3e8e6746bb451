// Package repository provides data access layer for progress module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/challenge_tracker/internal/progress/model"
)

// Repository defines the interface for progress log data access operations.
type Repository interface {
	// Upsert inserts a log or, when one exists for the same user, challenge
	// and date, adds its value to the stored one. It is a single statement.
	Upsert(ctx context.Context, log *model.ProgressLog) error

	// GetByKey finds the log of a user for a challenge on a date, with its
	// user and challenge loaded.
	GetByKey(ctx context.Context, userID, challengeID string, date time.Time) (*model.ProgressLog, error)

	// List returns the logs matching filter, latest date first, with their
	// user and challenge loaded.
	List(ctx context.Context, filter model.ListFilter) ([]model.ProgressLog, error)

	// Delete removes a single log.
	Delete(ctx context.Context, id string) error

	// RecentActivity returns the latest limit logs, newest first, optionally
	// restricted to a challenge.
	RecentActivity(ctx context.Context, challengeID string, limit int) ([]model.ActivityEntry, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new progress repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Upsert inserts a log or increments the value of the existing one.
func (r *repository) Upsert(ctx context.Context, log *model.ProgressLog) error {
	r.logger.Debugw("Upsert called",
		"user_id", log.UserID,
		"challenge_id", log.ChallengeID,
		"date", log.Date.Format(time.DateOnly),
		"value", log.Value,
	)

	err := r.db.WithContext(ctx).
		Omit("User", "Challenge").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "challenge_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value": gorm.Expr("progress_logs.value + excluded.value"),
			}),
		}).
		Create(log).Error

	if err != nil {
		r.logger.Errorw("Upsert database error", "user_id", log.UserID, "challenge_id", log.ChallengeID, "error", err)
		return fmt.Errorf("upsert progress log: %w", err)
	}

	return nil
}

// GetByKey finds the log of a user for a challenge on a date.
func (r *repository) GetByKey(
	ctx context.Context,
	userID, challengeID string,
	date time.Time,
) (*model.ProgressLog, error) {
	var log model.ProgressLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Challenge").
		Where("user_id = ? AND challenge_id = ? AND date = ?", userID, challengeID, date).
		First(&log).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrProgressLogNotFound
		}
		r.logger.Errorw("GetByKey database error", "user_id", userID, "challenge_id", challengeID, "error", err)
		return nil, fmt.Errorf("get progress log: %w", err)
	}

	return &log, nil
}

// List returns the logs matching filter, latest date first.
func (r *repository) List(ctx context.Context, filter model.ListFilter) ([]model.ProgressLog, error) {
	r.logger.Debugw("List called", "user_id", filter.UserID, "challenge_id", filter.ChallengeID)

	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Challenge")

	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.ChallengeID != "" {
		query = query.Where("challenge_id = ?", filter.ChallengeID)
	}

	logs := []model.ProgressLog{}
	err := query.
		Order("date DESC").
		Order("created_at DESC").
		Order("id ASC").
		Find(&logs).Error

	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, fmt.Errorf("list progress logs: %w", err)
	}

	return logs, nil
}

// Delete removes a single log.
func (r *repository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("Delete called", "progress_log_id", id)

	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProgressLog{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "progress_log_id", id, "error", result.Error)
		return fmt.Errorf("delete progress log: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.ErrProgressLogNotFound
	}

	r.logger.Infow("Delete completed", "progress_log_id", id)
	return nil
}

// RecentActivity returns the latest limit logs, newest first.
func (r *repository) RecentActivity(ctx context.Context, challengeID string, limit int) ([]model.ActivityEntry, error) {
	r.logger.Debugw("RecentActivity called", "challenge_id", challengeID, "limit", limit)

	query := r.db.WithContext(ctx).
		Table("progress_logs AS pl").
		Select(`pl.id AS id,
			pl.user_id AS user_id,
			u.name AS user_name,
			pl.challenge_id AS challenge_id,
			c.title AS challenge_title,
			pl.date AS date,
			pl.value AS value,
			pl.created_at AS created_at`).
		Joins("JOIN users AS u ON u.id = pl.user_id").
		Joins("JOIN challenges AS c ON c.id = pl.challenge_id")

	if challengeID != "" {
		query = query.Where("pl.challenge_id = ?", challengeID)
	}

	entries := []model.ActivityEntry{}
	err := query.
		Order("pl.created_at DESC").
		Order("pl.id ASC").
		Limit(limit).
		Scan(&entries).Error

	if err != nil {
		r.logger.Errorw("RecentActivity database error", "challenge_id", challengeID, "error", err)
		return nil, fmt.Errorf("list recent activity: %w", err)
	}

	return entries, nil
}

// Package repository provides data access layer for challenge module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/challenge/model"
)

// Repository defines the interface for challenge data access operations.
type Repository interface {
	// Create inserts a new challenge.
	Create(ctx context.Context, challenge *model.Challenge) error

	// GetByID finds a challenge by id.
	GetByID(ctx context.Context, id string) (*model.Challenge, error)

	// List returns the challenges passing filter at now, latest start first.
	List(ctx context.Context, filter model.Filter, now time.Time) ([]model.Challenge, error)

	// Update overwrites title, description and dates of an existing challenge.
	Update(ctx context.Context, challenge *model.Challenge) error

	// Delete removes a challenge together with its progress logs.
	Delete(ctx context.Context, id string) error

	// CountProgressLogs returns the number of progress logs keyed by challenge id.
	CountProgressLogs(ctx context.Context, challengeIDs []string) (map[string]int64, error)

	// CountParticipants returns the number of distinct users that logged
	// progress for the challenge.
	CountParticipants(ctx context.Context, challengeID string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new challenge repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new challenge.
func (r *repository) Create(ctx context.Context, challenge *model.Challenge) error {
	r.logger.Debugw("Create called", "title", challenge.Title)

	if err := r.db.WithContext(ctx).Create(challenge).Error; err != nil {
		r.logger.Errorw("Create database error", "title", challenge.Title, "error", err)
		return fmt.Errorf("create challenge: %w", err)
	}

	return nil
}

// GetByID finds a challenge by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.Challenge, error) {
	r.logger.Debugw("GetByID called", "challenge_id", id)

	var challenge model.Challenge
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&challenge).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID challenge not found", "challenge_id", id)
			return nil, model.ErrChallengeNotFound
		}
		r.logger.Errorw("GetByID database error", "challenge_id", id, "error", err)
		return nil, fmt.Errorf("get challenge: %w", err)
	}

	return &challenge, nil
}

// List returns the challenges passing filter at now, latest start first.
// The predicates use the same inclusive bounds as model.StatusAt.
func (r *repository) List(ctx context.Context, filter model.Filter, now time.Time) ([]model.Challenge, error) {
	r.logger.Debugw("List called", "filter", filter)

	now = now.UTC()
	query := r.db.WithContext(ctx).Model(&model.Challenge{})

	switch filter {
	case model.FilterActive:
		query = query.Where("start_date <= ? AND end_date >= ?", now, now)
	case model.FilterPast:
		query = query.Where("end_date < ?", now)
	case model.FilterUpcoming:
		query = query.Where("start_date > ?", now)
	}

	challenges := []model.Challenge{}
	err := query.
		Order("start_date DESC").
		Order("id ASC").
		Find(&challenges).Error

	if err != nil {
		r.logger.Errorw("List database error", "filter", filter, "error", err)
		return nil, fmt.Errorf("list challenges: %w", err)
	}

	r.logger.Debugw("List completed", "filter", filter, "count", len(challenges))
	return challenges, nil
}

// Update overwrites title, description and dates of an existing challenge.
func (r *repository) Update(ctx context.Context, challenge *model.Challenge) error {
	r.logger.Debugw("Update called", "challenge_id", challenge.ID)

	result := r.db.WithContext(ctx).
		Model(&model.Challenge{}).
		Where("id = ?", challenge.ID).
		Updates(map[string]interface{}{
			"title":       challenge.Title,
			"description": challenge.Description,
			"start_date":  challenge.StartDate.UTC(),
			"end_date":    challenge.EndDate.UTC(),
		})

	if result.Error != nil {
		r.logger.Errorw("Update database error", "challenge_id", challenge.ID, "error", result.Error)
		return fmt.Errorf("update challenge: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.ErrChallengeNotFound
	}

	return nil
}

// Delete removes a challenge. Its progress logs go with it through
// ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("Delete called", "challenge_id", id)

	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Challenge{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "challenge_id", id, "error", result.Error)
		return fmt.Errorf("delete challenge: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return model.ErrChallengeNotFound
	}

	r.logger.Infow("Delete completed", "challenge_id", id)
	return nil
}

type countRow struct {
	ChallengeID string
	Count       int64
}

// CountProgressLogs returns the number of progress logs keyed by challenge id.
// Challenges without logs are absent from the map.
func (r *repository) CountProgressLogs(ctx context.Context, challengeIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(challengeIDs))
	if len(challengeIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.WithContext(ctx).
		Table("progress_logs").
		Select("challenge_id, COUNT(*) AS count").
		Where("challenge_id IN ?", challengeIDs).
		Group("challenge_id").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("CountProgressLogs database error", "error", err)
		return nil, fmt.Errorf("count progress logs: %w", err)
	}

	for _, row := range rows {
		counts[row.ChallengeID] = row.Count
	}

	return counts, nil
}

// CountParticipants returns the number of distinct users with at least one
// progress log for the challenge.
func (r *repository) CountParticipants(ctx context.Context, challengeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("progress_logs").
		Where("challenge_id = ?", challengeID).
		Distinct("user_id").
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("CountParticipants database error", "challenge_id", challengeID, "error", err)
		return 0, fmt.Errorf("count participants: %w", err)
	}

	return count, nil
}

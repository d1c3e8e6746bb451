// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// List returns all users, newest first.
	List(ctx context.Context) ([]model.User, error)

	// UpdateName renames a user.
	UpdateName(ctx context.Context, id, name string) (*model.User, error)

	// Delete removes a user together with its memberships and progress logs.
	Delete(ctx context.Context, id string) error

	// ListMemberships returns team memberships keyed by user id.
	ListMemberships(ctx context.Context, userIDs []string) (map[string][]model.TeamMembership, error)

	// CountProgressLogs returns the number of progress logs keyed by user id.
	CountProgressLogs(ctx context.Context, userIDs []string) (map[string]int64, error)

	// ListProgressEntries returns the user's progress logs, latest date first.
	ListProgressEntries(ctx context.Context, userID string) ([]model.ProgressEntry, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "name", user.Name)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.logger.Errorw("Create database error", "name", user.Name, "error", err)
		return fmt.Errorf("create user: %w", err)
	}

	r.logger.Debugw("Create completed", "user_id", user.ID)
	return nil
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.logger.Debugw("GetByID called", "user_id", id)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID user not found", "user_id", id)
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", id, "error", err)
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// List returns all users, newest first.
func (r *repository) List(ctx context.Context) ([]model.User, error) {
	r.logger.Debugw("List called")

	users := []model.User{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Find(&users).Error

	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	r.logger.Debugw("List completed", "count", len(users))
	return users, nil
}

// UpdateName renames a user.
func (r *repository) UpdateName(ctx context.Context, id, name string) (*model.User, error) {
	r.logger.Debugw("UpdateName called", "user_id", id)

	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("name", name)

	if result.Error != nil {
		r.logger.Errorw("UpdateName database error", "user_id", id, "error", result.Error)
		return nil, fmt.Errorf("update user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("UpdateName user not found", "user_id", id)
		return nil, model.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a user. Memberships and progress logs go with it through
// ON DELETE CASCADE foreign keys.
func (r *repository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("Delete called", "user_id", id)

	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.User{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "user_id", id, "error", result.Error)
		return fmt.Errorf("delete user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("Delete user not found", "user_id", id)
		return model.ErrUserNotFound
	}

	r.logger.Infow("Delete completed", "user_id", id)
	return nil
}

type membershipRow struct {
	UserID string
	model.TeamMembership
}

// ListMemberships returns team memberships keyed by user id, earliest joined first.
func (r *repository) ListMemberships(ctx context.Context, userIDs []string) (map[string][]model.TeamMembership, error) {
	r.logger.Debugw("ListMemberships called", "user_count", len(userIDs))

	memberships := make(map[string][]model.TeamMembership, len(userIDs))
	if len(userIDs) == 0 {
		return memberships, nil
	}

	var rows []membershipRow
	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("team_members.user_id, team_members.id, team_members.team_id, teams.name AS team_name, team_members.joined_at").
		Joins("JOIN teams ON teams.id = team_members.team_id").
		Where("team_members.user_id IN ?", userIDs).
		Order("team_members.joined_at ASC").
		Order("team_members.id ASC").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("ListMemberships database error", "error", err)
		return nil, fmt.Errorf("list memberships: %w", err)
	}

	for _, row := range rows {
		memberships[row.UserID] = append(memberships[row.UserID], row.TeamMembership)
	}

	return memberships, nil
}

type countRow struct {
	UserID string
	Count  int64
}

// CountProgressLogs returns the number of progress logs keyed by user id.
// Users without logs are absent from the map.
func (r *repository) CountProgressLogs(ctx context.Context, userIDs []string) (map[string]int64, error) {
	r.logger.Debugw("CountProgressLogs called", "user_count", len(userIDs))

	counts := make(map[string]int64, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	var rows []countRow
	err := r.db.WithContext(ctx).
		Table("progress_logs").
		Select("user_id, COUNT(*) AS count").
		Where("user_id IN ?", userIDs).
		Group("user_id").
		Scan(&rows).Error

	if err != nil {
		r.logger.Errorw("CountProgressLogs database error", "error", err)
		return nil, fmt.Errorf("count progress logs: %w", err)
	}

	for _, row := range rows {
		counts[row.UserID] = row.Count
	}

	return counts, nil
}

// ListProgressEntries returns the user's progress logs, latest date first.
func (r *repository) ListProgressEntries(ctx context.Context, userID string) ([]model.ProgressEntry, error) {
	r.logger.Debugw("ListProgressEntries called", "user_id", userID)

	entries := []model.ProgressEntry{}
	err := r.db.WithContext(ctx).
		Table("progress_logs").
		Select("progress_logs.id, progress_logs.challenge_id, challenges.title AS challenge_title, " +
			"progress_logs.date, progress_logs.value, progress_logs.created_at").
		Joins("JOIN challenges ON challenges.id = progress_logs.challenge_id").
		Where("progress_logs.user_id = ?", userID).
		Order("progress_logs.date DESC").
		Order("progress_logs.created_at DESC").
		Scan(&entries).Error

	if err != nil {
		r.logger.Errorw("ListProgressEntries database error", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list progress entries: %w", err)
	}

	return entries, nil
}

// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/festy23/challenge_tracker/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// List returns all teams, newest first.
	List(ctx context.Context) ([]teamModel.Team, error)

	// UpdateName renames a team.
	UpdateName(ctx context.Context, id, name string) (*teamModel.Team, error)

	// Delete removes a team and its memberships. Users are kept.
	Delete(ctx context.Context, id string) error

	// ListMembers returns the members of the given teams keyed by team id,
	// earliest joined first, with their users loaded.
	ListMembers(ctx context.Context, teamIDs []string) (map[string][]teamModel.TeamMember, error)

	// AddMember inserts a membership.
	AddMember(ctx context.Context, member *teamModel.TeamMember) error

	// GetMember finds a membership with its user and team loaded.
	GetMember(ctx context.Context, teamID, userID string) (*teamModel.TeamMember, error)

	// RemoveMember deletes a membership.
	RemoveMember(ctx context.Context, teamID, userID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	r.logger.Debugw("Create called", "name", team.Name)

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		r.logger.Errorw("Create database error", "name", team.Name, "error", err)
		return fmt.Errorf("create team: %w", err)
	}

	return nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	r.logger.Debugw("GetByID called", "team_id", id)

	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID team not found", "team_id", id)
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("GetByID database error", "team_id", id, "error", err)
		return nil, fmt.Errorf("get team: %w", err)
	}

	return &team, nil
}

// List returns all teams, newest first.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	r.logger.Debugw("List called")

	teams := []teamModel.Team{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Find(&teams).Error

	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

// UpdateName renames a team.
func (r *repository) UpdateName(ctx context.Context, id, name string) (*teamModel.Team, error) {
	r.logger.Debugw("UpdateName called", "team_id", id)

	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Update("name", name)

	if result.Error != nil {
		r.logger.Errorw("UpdateName database error", "team_id", id, "error", result.Error)
		return nil, fmt.Errorf("update team: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, teamModel.ErrTeamNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a team. Memberships go with it through ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id string) error {
	r.logger.Debugw("Delete called", "team_id", id)

	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&teamModel.Team{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "team_id", id, "error", result.Error)
		return fmt.Errorf("delete team: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}

	r.logger.Infow("Delete completed", "team_id", id)
	return nil
}

// ListMembers returns the members of the given teams keyed by team id.
func (r *repository) ListMembers(ctx context.Context, teamIDs []string) (map[string][]teamModel.TeamMember, error) {
	r.logger.Debugw("ListMembers called", "team_count", len(teamIDs))

	members := make(map[string][]teamModel.TeamMember, len(teamIDs))
	if len(teamIDs) == 0 {
		return members, nil
	}

	var rows []teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("team_id IN ?", teamIDs).
		Order("joined_at ASC").
		Order("id ASC").
		Find(&rows).Error

	if err != nil {
		r.logger.Errorw("ListMembers database error", "error", err)
		return nil, fmt.Errorf("list team members: %w", err)
	}

	for _, m := range rows {
		members[m.TeamID] = append(members[m.TeamID], m)
	}

	return members, nil
}

// AddMember inserts a membership. A second membership for the same
// (user, team) pair fails with ErrMemberExists.
func (r *repository) AddMember(ctx context.Context, member *teamModel.TeamMember) error {
	r.logger.Debugw("AddMember called", "team_id", member.TeamID, "user_id", member.UserID)

	if err := r.db.WithContext(ctx).Omit("User", "Team").Create(member).Error; err != nil {
		if isDuplicateError(err) {
			r.logger.Debugw("AddMember duplicate membership", "team_id", member.TeamID, "user_id", member.UserID)
			return teamModel.ErrMemberExists
		}
		r.logger.Errorw("AddMember database error", "team_id", member.TeamID, "user_id", member.UserID, "error", err)
		return fmt.Errorf("add team member: %w", err)
	}

	return nil
}

// GetMember finds a membership with its user and team loaded.
func (r *repository) GetMember(ctx context.Context, teamID, userID string) (*teamModel.TeamMember, error) {
	r.logger.Debugw("GetMember called", "team_id", teamID, "user_id", userID)

	var member teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Team").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrMembershipNotFound
		}
		r.logger.Errorw("GetMember database error", "team_id", teamID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("get team member: %w", err)
	}

	return &member, nil
}

// RemoveMember deletes a membership.
func (r *repository) RemoveMember(ctx context.Context, teamID, userID string) error {
	r.logger.Debugw("RemoveMember called", "team_id", teamID, "user_id", userID)

	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&teamModel.TeamMember{})

	if result.Error != nil {
		r.logger.Errorw("RemoveMember database error", "team_id", teamID, "user_id", userID, "error", result.Error)
		return fmt.Errorf("remove team member: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return teamModel.ErrMembershipNotFound
	}

	r.logger.Infow("RemoveMember completed", "team_id", teamID, "user_id", userID)
	return nil
}

// isDuplicateError reports a unique constraint violation, whether or not
// the dialector translated it to gorm.ErrDuplicatedKey.
func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

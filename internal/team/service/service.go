// Package service provides business logic layer for team module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/festy23/challenge_tracker/internal/team/model"
	"github.com/festy23/challenge_tracker/internal/team/repository"
	userRepository "github.com/festy23/challenge_tracker/internal/user/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam stores a new team.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// GetTeam returns a team with its members.
	GetTeam(ctx context.Context, id string) (*teamModel.TeamResponse, error)

	// ListTeams returns all teams with their members.
	ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error)

	// UpdateTeam renames a team.
	UpdateTeam(ctx context.Context, id string, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error)

	// DeleteTeam removes a team and its memberships.
	DeleteTeam(ctx context.Context, id string) error

	// AddMember adds a user to a team.
	AddMember(ctx context.Context, teamID string, req *teamModel.AddMemberRequest) (*teamModel.TeamMember, error)

	// RemoveMember removes a user from a team.
	RemoveMember(ctx context.Context, teamID, userID string) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance. db is used to run multi-step
// operations in a transaction.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// CreateTeam stores a new team.
func (s *service) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	s.logger.Debugw("CreateTeam called", "name", req.Name)

	name := strings.TrimSpace(req.Name)

	team := &teamModel.Team{Name: name}
	if err := s.repo.Create(ctx, team); err != nil {
		s.logger.Errorw("CreateTeam failed", "error", err)
		return nil, err
	}

	s.logger.Infow("CreateTeam completed", "team_id", team.ID)
	return team, nil
}

// GetTeam returns a team with its members.
func (s *service) GetTeam(ctx context.Context, id string) (*teamModel.TeamResponse, error) {
	s.logger.Debugw("GetTeam called", "team_id", id)

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, []string{id})
	if err != nil {
		s.logger.Errorw("GetTeam failed to load members", "team_id", id, "error", err)
		return nil, err
	}

	resp := toResponse(*team, members[id])
	return &resp, nil
}

// ListTeams returns all teams with their members.
func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error) {
	s.logger.Debugw("ListTeams called")

	teams, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("ListTeams failed", "error", err)
		return nil, err
	}

	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}

	members, err := s.repo.ListMembers(ctx, ids)
	if err != nil {
		s.logger.Errorw("ListTeams failed to load members", "error", err)
		return nil, err
	}

	resp := make([]teamModel.TeamResponse, len(teams))
	for i, t := range teams {
		resp[i] = toResponse(t, members[t.ID])
	}

	s.logger.Infow("ListTeams completed", "count", len(resp))
	return resp, nil
}

// UpdateTeam renames a team.
func (s *service) UpdateTeam(ctx context.Context, id string, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error) {
	s.logger.Debugw("UpdateTeam called", "team_id", id)

	name := strings.TrimSpace(req.Name)

	team, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("UpdateTeam completed", "team_id", id)
	return team, nil
}

// DeleteTeam removes a team and its memberships. Users are kept.
func (s *service) DeleteTeam(ctx context.Context, id string) error {
	s.logger.Debugw("DeleteTeam called", "team_id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("DeleteTeam completed", "team_id", id)
	return nil
}

// AddMember adds a user to a team inside a transaction. The team and the
// user must exist and the user must not already be a member.
func (s *service) AddMember(
	ctx context.Context,
	teamID string,
	req *teamModel.AddMemberRequest,
) (*teamModel.TeamMember, error) {
	s.logger.Debugw("AddMember called", "team_id", teamID, "user_id", req.UserID)

	var member *teamModel.TeamMember
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txUsers := userRepository.New(tx, s.logger)

		if _, err := txRepo.GetByID(ctx, teamID); err != nil {
			return err
		}
		if _, err := txUsers.GetByID(ctx, req.UserID); err != nil {
			return err
		}

		if err := txRepo.AddMember(ctx, &teamModel.TeamMember{TeamID: teamID, UserID: req.UserID}); err != nil {
			return err
		}

		var err error
		member, err = txRepo.GetMember(ctx, teamID, req.UserID)
		return err
	})
	if err != nil {
		s.logger.Debugw("AddMember failed", "team_id", teamID, "user_id", req.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("AddMember completed", "team_id", teamID, "user_id", req.UserID)
	return member, nil
}

// RemoveMember removes a user from a team.
func (s *service) RemoveMember(ctx context.Context, teamID, userID string) error {
	s.logger.Debugw("RemoveMember called", "team_id", teamID, "user_id", userID)

	if err := s.repo.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}

	s.logger.Infow("RemoveMember completed", "team_id", teamID, "user_id", userID)
	return nil
}

func toResponse(team teamModel.Team, members []teamModel.TeamMember) teamModel.TeamResponse {
	if members == nil {
		members = []teamModel.TeamMember{}
	}
	return teamModel.TeamResponse{
		Team:        team,
		Members:     members,
		MemberCount: len(members),
	}
}

// Package service provides business logic layer for user module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/user/model"
	"github.com/festy23/challenge_tracker/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// CreateUser stores a new user.
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)

	// GetUser returns a user with memberships and progress logs.
	GetUser(ctx context.Context, id string) (*model.UserDetailResponse, error)

	// ListUsers returns all users with memberships and log counts.
	ListUsers(ctx context.Context) ([]model.UserResponse, error)

	// UpdateUser renames a user.
	UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error)

	// DeleteUser removes a user and everything that belongs to it.
	DeleteUser(ctx context.Context, id string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// CreateUser stores a new user.
func (s *service) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	s.logger.Debugw("CreateUser called", "name", req.Name)

	name := strings.TrimSpace(req.Name)

	user := &model.User{Name: name}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Errorw("CreateUser failed", "error", err)
		return nil, err
	}

	s.logger.Infow("CreateUser completed", "user_id", user.ID)
	return user, nil
}

// GetUser returns a user with memberships and progress logs.
func (s *service) GetUser(ctx context.Context, id string) (*model.UserDetailResponse, error) {
	s.logger.Debugw("GetUser called", "user_id", id)

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	memberships, err := s.repo.ListMemberships(ctx, []string{id})
	if err != nil {
		s.logger.Errorw("GetUser failed to load memberships", "user_id", id, "error", err)
		return nil, err
	}

	logs, err := s.repo.ListProgressEntries(ctx, id)
	if err != nil {
		s.logger.Errorw("GetUser failed to load progress logs", "user_id", id, "error", err)
		return nil, err
	}

	return &model.UserDetailResponse{
		User:            *user,
		TeamMemberships: nonNil(memberships[id]),
		ProgressLogs:    logs,
	}, nil
}

// ListUsers returns all users with memberships and log counts.
func (s *service) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	s.logger.Debugw("ListUsers called")

	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("ListUsers failed", "error", err)
		return nil, err
	}

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	memberships, err := s.repo.ListMemberships(ctx, ids)
	if err != nil {
		s.logger.Errorw("ListUsers failed to load memberships", "error", err)
		return nil, err
	}

	counts, err := s.repo.CountProgressLogs(ctx, ids)
	if err != nil {
		s.logger.Errorw("ListUsers failed to count progress logs", "error", err)
		return nil, err
	}

	resp := make([]model.UserResponse, len(users))
	for i, u := range users {
		resp[i] = model.UserResponse{
			User:             u,
			TeamMemberships:  nonNil(memberships[u.ID]),
			ProgressLogCount: counts[u.ID],
		}
	}

	s.logger.Infow("ListUsers completed", "count", len(resp))
	return resp, nil
}

// UpdateUser renames a user.
func (s *service) UpdateUser(ctx context.Context, id string, req *model.UpdateUserRequest) (*model.User, error) {
	s.logger.Debugw("UpdateUser called", "user_id", id)

	name := strings.TrimSpace(req.Name)

	user, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("UpdateUser completed", "user_id", id)
	return user, nil
}

// DeleteUser removes a user and everything that belongs to it.
func (s *service) DeleteUser(ctx context.Context, id string) error {
	s.logger.Debugw("DeleteUser called", "user_id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("DeleteUser completed", "user_id", id)
	return nil
}

func nonNil(m []model.TeamMembership) []model.TeamMembership {
	if m == nil {
		return []model.TeamMembership{}
	}
	return m
}

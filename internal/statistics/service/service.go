// Package service provides business logic layer for statistics module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/statistics/model"
	"github.com/festy23/challenge_tracker/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// Overview returns the dashboard counters.
	Overview(ctx context.Context) (*model.Overview, error)
}

type service struct {
	repo   repository.Repository
	now    func() time.Time
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return NewWithClock(repo, time.Now, logger)
}

// NewWithClock is New with an explicit source of the current instant.
func NewWithClock(repo repository.Repository, now func() time.Time, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

// Overview returns the dashboard counters.
func (s *service) Overview(ctx context.Context) (*model.Overview, error) {
	s.logger.Debugw("Overview called")

	stats, err := s.repo.Overview(ctx, s.now())
	if err != nil {
		s.logger.Errorw("Overview failed", "error", err)
		return nil, err
	}

	s.logger.Infow("Overview completed",
		"users", stats.Users,
		"challenges", stats.Challenges,
		"progress_logs", stats.ProgressLogs,
	)
	return stats, nil
}

// Package service provides business logic layer for challenge module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/challenge/model"
	"github.com/festy23/challenge_tracker/internal/challenge/repository"
	"github.com/festy23/challenge_tracker/pkg/validation"
)

// Service defines the interface for challenge business logic operations.
type Service interface {
	// ListChallenges returns challenges matching filter with their status.
	ListChallenges(ctx context.Context, filter model.Filter) ([]model.ChallengeResponse, error)

	// GetChallenge returns a challenge with status and participant count.
	GetChallenge(ctx context.Context, id string) (*model.ChallengeDetailResponse, error)

	// CreateChallenge validates and stores a new challenge.
	CreateChallenge(ctx context.Context, req *model.ChallengeRequest) (*model.ChallengeResponse, error)

	// UpdateChallenge validates and overwrites an existing challenge.
	UpdateChallenge(ctx context.Context, id string, req *model.ChallengeRequest) (*model.ChallengeResponse, error)

	// DeleteChallenge removes a challenge and its progress logs.
	DeleteChallenge(ctx context.Context, id string) error
}

type service struct {
	repo     repository.Repository
	location *time.Location
	now      func() time.Time
	logger   *zap.SugaredLogger
}

// New creates a new challenge service instance. Date-only input is read in loc.
func New(repo repository.Repository, loc *time.Location, logger *zap.SugaredLogger) Service {
	return NewWithClock(repo, loc, time.Now, logger)
}

// NewWithClock is New with an explicit source of the current instant.
func NewWithClock(
	repo repository.Repository,
	loc *time.Location,
	now func() time.Time,
	logger *zap.SugaredLogger,
) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:     repo,
		location: loc,
		now:      now,
		logger:   logger,
	}
}

// ListChallenges returns challenges matching filter with their status.
func (s *service) ListChallenges(ctx context.Context, filter model.Filter) ([]model.ChallengeResponse, error) {
	s.logger.Debugw("ListChallenges called", "filter", filter)

	now := s.now()
	challenges, err := s.repo.List(ctx, filter, now)
	if err != nil {
		s.logger.Errorw("ListChallenges failed", "filter", filter, "error", err)
		return nil, err
	}

	ids := make([]string, len(challenges))
	for i, c := range challenges {
		ids[i] = c.ID
	}

	counts, err := s.repo.CountProgressLogs(ctx, ids)
	if err != nil {
		s.logger.Errorw("ListChallenges failed to count progress logs", "error", err)
		return nil, err
	}

	resp := make([]model.ChallengeResponse, len(challenges))
	for i, c := range challenges {
		resp[i] = model.ChallengeResponse{
			Challenge:        c,
			Status:           c.StatusAt(now),
			ProgressLogCount: counts[c.ID],
		}
	}

	s.logger.Infow("ListChallenges completed", "filter", filter, "count", len(resp))
	return resp, nil
}

// GetChallenge returns a challenge with status and participant count.
func (s *service) GetChallenge(ctx context.Context, id string) (*model.ChallengeDetailResponse, error) {
	s.logger.Debugw("GetChallenge called", "challenge_id", id)

	challenge, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountProgressLogs(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	participants, err := s.repo.CountParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ChallengeDetailResponse{
		Challenge:        *challenge,
		Status:           challenge.StatusAt(s.now()),
		ProgressLogCount: counts[id],
		ParticipantCount: participants,
	}, nil
}

// CreateChallenge validates and stores a new challenge.
func (s *service) CreateChallenge(ctx context.Context, req *model.ChallengeRequest) (*model.ChallengeResponse, error) {
	s.logger.Debugw("CreateChallenge called", "title", req.Title)

	challenge, err := s.parse(req)
	if err != nil {
		s.logger.Debugw("CreateChallenge validation failed", "error", err)
		return nil, err
	}

	if err := s.repo.Create(ctx, challenge); err != nil {
		s.logger.Errorw("CreateChallenge failed", "error", err)
		return nil, err
	}

	s.logger.Infow("CreateChallenge completed", "challenge_id", challenge.ID)
	return &model.ChallengeResponse{
		Challenge: *challenge,
		Status:    challenge.StatusAt(s.now()),
	}, nil
}

// UpdateChallenge validates and overwrites an existing challenge.
func (s *service) UpdateChallenge(
	ctx context.Context,
	id string,
	req *model.ChallengeRequest,
) (*model.ChallengeResponse, error) {
	s.logger.Debugw("UpdateChallenge called", "challenge_id", id)

	challenge, err := s.parse(req)
	if err != nil {
		s.logger.Debugw("UpdateChallenge validation failed", "challenge_id", id, "error", err)
		return nil, err
	}
	challenge.ID = id

	if err := s.repo.Update(ctx, challenge); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountProgressLogs(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("UpdateChallenge completed", "challenge_id", id)
	return &model.ChallengeResponse{
		Challenge:        *updated,
		Status:           updated.StatusAt(s.now()),
		ProgressLogCount: counts[id],
	}, nil
}

// DeleteChallenge removes a challenge and its progress logs.
func (s *service) DeleteChallenge(ctx context.Context, id string) error {
	s.logger.Debugw("DeleteChallenge called", "challenge_id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("DeleteChallenge completed", "challenge_id", id)
	return nil
}

// parse validates every field of req and reports all problems at once.
func (s *service) parse(req *model.ChallengeRequest) (*model.Challenge, error) {
	v := &validation.Error{}

	start, startOK := s.parseDate(v, "startDate", "Start date", req.StartDate)
	end, endOK := s.parseDate(v, "endDate", "End date", req.EndDate)

	if startOK && endOK && !end.After(start) {
		v.Add("endDate", "End date must be after start date")
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	return &model.Challenge{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		StartDate:   start.UTC(),
		EndDate:     end.UTC(),
	}, nil
}

func (s *service) parseDate(v *validation.Error, field, label, raw string) (time.Time, bool) {
	t, err := validation.ParseDate(raw, s.location)
	if err != nil {
		v.Add(field, label+" must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
		return time.Time{}, false
	}
	return t, true
}

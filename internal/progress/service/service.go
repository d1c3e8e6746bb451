// Package service provides business logic layer for progress module.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	challengeModel "github.com/festy23/challenge_tracker/internal/challenge/model"
	challengeRepository "github.com/festy23/challenge_tracker/internal/challenge/repository"
	"github.com/festy23/challenge_tracker/internal/events"
	"github.com/festy23/challenge_tracker/internal/progress/model"
	"github.com/festy23/challenge_tracker/internal/progress/repository"
	userRepository "github.com/festy23/challenge_tracker/internal/user/repository"
	"github.com/festy23/challenge_tracker/pkg/validation"
)

const (
	// ActivityLimit is the number of entries returned by the activity feed.
	ActivityLimit = 10

	// PublishTimeout bounds how long Record waits on the event publisher
	// after the log is committed.
	PublishTimeout = time.Second
)

// Service defines the interface for progress business logic operations.
type Service interface {
	// Record adds value to the user's log for the challenge on the given day,
	// creating the log on first use, and returns the stored row.
	Record(ctx context.Context, req *model.RecordRequest) (*model.ProgressLog, error)

	// List returns logs by user, challenge or both, latest date first.
	List(ctx context.Context, filter model.ListFilter) ([]model.ProgressLog, error)

	// Delete removes a single log.
	Delete(ctx context.Context, id string) error

	// RecentActivity returns the latest logs, optionally for one challenge.
	RecentActivity(ctx context.Context, challengeID string) ([]model.ActivityEntry, error)

	// UserProgress summarises one user's progress on one challenge.
	UserProgress(ctx context.Context, userID, challengeID string) (*model.UserProgressResponse, error)
}

type service struct {
	repo           repository.Repository
	db             *gorm.DB
	publisher      events.Publisher
	publishTimeout time.Duration
	location       *time.Location
	now            func() time.Time
	logger         *zap.SugaredLogger
}

// New creates a new progress service instance. Dates are cut into calendar
// days in loc.
func New(
	repo repository.Repository,
	db *gorm.DB,
	publisher events.Publisher,
	loc *time.Location,
	logger *zap.SugaredLogger,
) Service {
	return NewWithClock(repo, db, publisher, loc, time.Now, logger)
}

// NewWithClock is New with an explicit source of the current instant.
func NewWithClock(
	repo repository.Repository,
	db *gorm.DB,
	publisher events.Publisher,
	loc *time.Location,
	now func() time.Time,
	logger *zap.SugaredLogger,
) Service {
	if loc == nil {
		loc = time.UTC
	}
	if publisher == nil {
		publisher = events.NewNoop()
	}
	return &service{
		repo:           repo,
		db:             db,
		publisher:      publisher,
		publishTimeout: PublishTimeout,
		location:       loc,
		now:            now,
		logger:         logger,
	}
}

// Record validates the submission and upserts it in one transaction.
// Missing user or challenge is reported before any field validation.
func (s *service) Record(ctx context.Context, req *model.RecordRequest) (*model.ProgressLog, error) {
	s.logger.Debugw("Record called", "user_id", req.UserID, "challenge_id", req.ChallengeID, "date", req.Date)

	var value float64
	if req.Value != nil {
		value = *req.Value
	}

	var log *model.ProgressLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := userRepository.New(tx, s.logger).GetByID(ctx, req.UserID); err != nil {
			return err
		}

		challenge, err := challengeRepository.New(tx, s.logger).GetByID(ctx, req.ChallengeID)
		if err != nil {
			return err
		}

		day, err := s.validate(req, challenge)
		if err != nil {
			return err
		}

		txRepo := repository.New(tx, s.logger)
		if err := txRepo.Upsert(ctx, &model.ProgressLog{
			UserID:      req.UserID,
			ChallengeID: req.ChallengeID,
			Date:        day,
			Value:       value,
		}); err != nil {
			return err
		}

		log, err = txRepo.GetByKey(ctx, req.UserID, req.ChallengeID, day)
		return err
	})
	if err != nil {
		if _, ok := validation.As(err); ok {
			s.logger.Debugw("Record validation failed", "user_id", req.UserID, "challenge_id", req.ChallengeID, "error", err)
		}
		return nil, err
	}

	s.logger.Infow("Record completed",
		"progress_log_id", log.ID,
		"user_id", log.UserID,
		"challenge_id", log.ChallengeID,
		"date", log.Date.Format(time.DateOnly),
		"total_value", log.Value,
	)

	s.publish(ctx, log, value)
	return log, nil
}

// validate checks the date range and value and returns the calendar day
// to store.
func (s *service) validate(req *model.RecordRequest, challenge *challengeModel.Challenge) (time.Time, error) {
	v := &validation.Error{}

	var day time.Time
	raw, err := validation.ParseDate(req.Date, s.location)
	switch {
	case err != nil:
		v.Add("date", "Date must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
	default:
		day = model.Day(raw, s.location)
		if !model.InRange(day, challenge.StartDate, challenge.EndDate, s.location) {
			v.Add("date", "Date must be within the challenge period")
		}
	}

	if req.Value == nil {
		v.Add("value", "Value is required")
	} else if *req.Value < 0 {
		v.Add("value", "Value must be greater than or equal to 0")
	}

	return day, v.OrNil()
}

// publish emits a progress.recorded event. Failures are logged only.
// The write ignores request cancellation and is capped at publishTimeout.
func (s *service) publish(ctx context.Context, log *model.ProgressLog, value float64) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	event := events.NewProgressRecorded(log.ID, log.UserID, log.ChallengeID, log.Date, value, log.Value, s.now())
	if err := s.publisher.PublishProgressRecorded(ctx, event); err != nil {
		s.logger.Warnw("Failed to publish progress event", "progress_log_id", log.ID, "event_id", event.EventID, "error", err)
	}
}

// List returns logs by user, challenge or both.
func (s *service) List(ctx context.Context, filter model.ListFilter) ([]model.ProgressLog, error) {
	s.logger.Debugw("List called", "user_id", filter.UserID, "challenge_id", filter.ChallengeID)

	if filter.Empty() {
		return nil, validation.NewError("userId", "userId or challengeId is required")
	}

	return s.repo.List(ctx, filter)
}

// Delete removes a single log.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debugw("Delete called", "progress_log_id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("Delete completed", "progress_log_id", id)
	return nil
}

// RecentActivity returns the latest logs, optionally for one challenge.
func (s *service) RecentActivity(ctx context.Context, challengeID string) ([]model.ActivityEntry, error) {
	s.logger.Debugw("RecentActivity called", "challenge_id", challengeID)
	return s.repo.RecentActivity(ctx, challengeID, ActivityLimit)
}

// UserProgress summarises one user's progress on one challenge.
func (s *service) UserProgress(
	ctx context.Context,
	userID, challengeID string,
) (*model.UserProgressResponse, error) {
	s.logger.Debugw("UserProgress called", "user_id", userID, "challenge_id", challengeID)

	user, err := userRepository.New(s.db, s.logger).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	challenge, err := challengeRepository.New(s.db, s.logger).GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.List(ctx, model.ListFilter{UserID: userID, ChallengeID: challengeID})
	if err != nil {
		return nil, err
	}

	resp := &model.UserProgressResponse{
		UserID:     user.ID,
		UserName:   user.Name,
		Challenge:  *challenge,
		Status:     challenge.StatusAt(s.now()),
		DaysLogged: len(logs),
		Logs:       logs,
	}
	for _, l := range logs {
		resp.TotalValue += l.Value
	}
	if resp.DaysLogged > 0 {
		resp.DailyAverage = resp.TotalValue / float64(resp.DaysLogged)
	}

	s.logger.Infow("UserProgress completed", "user_id", userID, "challenge_id", challengeID, "days_logged", resp.DaysLogged)
	return resp, nil
}

// Package service builds individual and team leaderboards for challenges.
// Every call re-reads the stored logs; nothing is cached between calls.
package service

import (
	"context"

	"go.uber.org/zap"

	challengeModel "github.com/festy23/challenge_tracker/internal/challenge/model"
	"github.com/festy23/challenge_tracker/internal/leaderboard/model"
	"github.com/festy23/challenge_tracker/internal/leaderboard/repository"
	teamModel "github.com/festy23/challenge_tracker/internal/team/model"
)

// ChallengeGetter finds challenges.
type ChallengeGetter interface {
	GetByID(ctx context.Context, id string) (*challengeModel.Challenge, error)
}

// TeamGetter finds teams.
type TeamGetter interface {
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)
}

// Service defines the interface for leaderboard operations.
type Service interface {
	// Individual ranks the users that logged progress for the challenge.
	Individual(ctx context.Context, challengeID string) (*model.IndividualResponse, error)

	// Teams ranks every team with at least one member by mean member total.
	Teams(ctx context.Context, challengeID string) (*model.TeamResponse, error)

	// TeamInternal ranks all members of a team, including those without logs.
	TeamInternal(ctx context.Context, teamID, challengeID string) (*model.TeamInternalResponse, error)
}

type service struct {
	repo       repository.Repository
	challenges ChallengeGetter
	teams      TeamGetter
	logger     *zap.SugaredLogger
}

// New creates a new leaderboard service instance.
func New(
	repo repository.Repository,
	challenges ChallengeGetter,
	teams TeamGetter,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:       repo,
		challenges: challenges,
		teams:      teams,
		logger:     logger,
	}
}

// Individual ranks the users that logged progress for the challenge.
func (s *service) Individual(ctx context.Context, challengeID string) (*model.IndividualResponse, error) {
	s.logger.Debugw("Individual called", "challenge_id", challengeID)

	challenge, err := s.challenges.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.UserTotals(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	board := RankIndividuals(totals)
	s.logger.Infow("Individual completed", "challenge_id", challengeID, "entries", len(board))

	return &model.IndividualResponse{
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		Leaderboard:    board,
	}, nil
}

// Teams ranks every team with at least one member by mean member total.
func (s *service) Teams(ctx context.Context, challengeID string) (*model.TeamResponse, error) {
	s.logger.Debugw("Teams called", "challenge_id", challengeID)

	challenge, err := s.challenges.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.UserTotals(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.Members(ctx, "")
	if err != nil {
		return nil, err
	}

	board := RankTeams(members, totalsByUser(totals))
	s.logger.Infow("Teams completed", "challenge_id", challengeID, "entries", len(board))

	return &model.TeamResponse{
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		Leaderboard:    board,
	}, nil
}

// TeamInternal ranks all members of a team, including those without logs.
func (s *service) TeamInternal(
	ctx context.Context,
	teamID, challengeID string,
) (*model.TeamInternalResponse, error) {
	s.logger.Debugw("TeamInternal called", "team_id", teamID, "challenge_id", challengeID)

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	challenge, err := s.challenges.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.Members(ctx, teamID)
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.UserTotals(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	board := RankMembers(members, totalsByUser(totals))
	s.logger.Infow("TeamInternal completed", "team_id", teamID, "challenge_id", challengeID, "entries", len(board))

	return &model.TeamInternalResponse{
		TeamID:         team.ID,
		TeamName:       team.Name,
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		Leaderboard:    board,
	}, nil
}

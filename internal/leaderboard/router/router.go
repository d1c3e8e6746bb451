// Package router provides leaderboard routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	challengeRepository "github.com/festy23/challenge_tracker/internal/challenge/repository"
	"github.com/festy23/challenge_tracker/internal/leaderboard/handler"
	"github.com/festy23/challenge_tracker/internal/leaderboard/repository"
	"github.com/festy23/challenge_tracker/internal/leaderboard/service"
	teamRepository "github.com/festy23/challenge_tracker/internal/team/repository"
)

// RegisterRoutes registers leaderboard routes under /challenges and /teams.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(
		repository.New(db, logger),
		challengeRepository.New(db, logger),
		teamRepository.New(db, logger),
		logger,
	)
	h := handler.New(svc, logger)

	r.GET("/challenges/:id/leaderboard/individual", h.Individual)
	r.GET("/challenges/:id/leaderboard/teams", h.Teams)
	r.GET("/teams/:id/leaderboard", h.TeamInternal)
}

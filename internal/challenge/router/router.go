// Package router provides challenge module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/challenge/handler"
	"github.com/festy23/challenge_tracker/internal/challenge/repository"
	"github.com/festy23/challenge_tracker/internal/challenge/service"
)

// RegisterRoutes registers challenge module routes. Date-only input is read in loc.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, loc *time.Location, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, loc, logger)
	h := handler.New(svc, logger)

	challenges := r.Group("/challenges")
	challenges.GET("", h.ListChallenges)
	challenges.POST("", h.CreateChallenge)
	challenges.GET("/:id", h.GetChallenge)
	challenges.PUT("/:id", h.UpdateChallenge)
	challenges.DELETE("/:id", h.DeleteChallenge)
}

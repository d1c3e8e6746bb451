// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/team/handler"
	"github.com/festy23/challenge_tracker/internal/team/repository"
	"github.com/festy23/challenge_tracker/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.GET("", h.ListTeams)
	teams.POST("", h.CreateTeam)
	teams.GET("/:id", h.GetTeam)
	teams.PUT("/:id", h.UpdateTeam)
	teams.DELETE("/:id", h.DeleteTeam)
	teams.POST("/:id/members", h.AddMember)
	teams.DELETE("/:id/members/:userId", h.RemoveMember)
}

// Package router provides progress module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/events"
	"github.com/festy23/challenge_tracker/internal/progress/handler"
	"github.com/festy23/challenge_tracker/internal/progress/repository"
	"github.com/festy23/challenge_tracker/internal/progress/service"
)

// RegisterRoutes registers progress module routes.
func RegisterRoutes(
	r gin.IRouter,
	db *gorm.DB,
	publisher events.Publisher,
	loc *time.Location,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, publisher, loc, logger)
	h := handler.New(svc, logger)

	progress := r.Group("/progress")
	progress.POST("", h.RecordProgress)
	progress.GET("", h.ListProgress)
	progress.DELETE("", h.DeleteProgress)

	r.GET("/activity", h.RecentActivity)
	r.GET("/users/:id/challenges/:challengeId/progress", h.UserProgress)
}

package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	challengeRouter "github.com/festy23/challenge_tracker/internal/challenge/router"
	"github.com/festy23/challenge_tracker/internal/events"
	"github.com/festy23/challenge_tracker/internal/health"
	leaderboardRouter "github.com/festy23/challenge_tracker/internal/leaderboard/router"
	"github.com/festy23/challenge_tracker/internal/middleware"
	progressRouter "github.com/festy23/challenge_tracker/internal/progress/router"
	statisticsRouter "github.com/festy23/challenge_tracker/internal/statistics/router"
	teamRouter "github.com/festy23/challenge_tracker/internal/team/router"
	userRouter "github.com/festy23/challenge_tracker/internal/user/router"
)

// setupRouter builds the gin engine with middleware and every module's routes.
func setupRouter(
	db *gorm.DB,
	publisher events.Publisher,
	loc *time.Location,
	logger *zap.SugaredLogger,
	checks ...health.Check,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health"))
	r.Use(middleware.Recovery(logger))

	health.New(logger, checks...).RegisterRoutes(r)

	userRouter.RegisterRoutes(r, db, logger)
	teamRouter.RegisterRoutes(r, db, logger)
	challengeRouter.RegisterRoutes(r, db, loc, logger)
	progressRouter.RegisterRoutes(r, db, publisher, loc, logger)
	leaderboardRouter.RegisterRoutes(r, db, logger)
	statisticsRouter.RegisterRoutes(r, db, logger)

	return r
}

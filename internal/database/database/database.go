// Package database opens and manages the GORM connection to PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/festy23/challenge_tracker/internal/database/config"
	"github.com/festy23/challenge_tracker/internal/database/pool"
	"github.com/festy23/challenge_tracker/pkg/retry"
)

// ConnectTimeout bounds the whole retry loop of Connect.
const ConnectTimeout = 2 * time.Minute

// Connect opens PostgreSQL described by cfg, retrying while the server is
// unreachable, and applies poolCfg.
func Connect(
	ctx context.Context,
	cfg config.Config,
	retryCfg retry.Config,
	poolCfg pool.Config,
	logger *zap.SugaredLogger,
) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, ConnectTimeout)
	defer cancel()

	logger.Infow("Connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DBName,
	)

	db, err := Open(ctx, postgres.Open(cfg.DSN()), retryCfg, logger)
	if err != nil {
		return nil, config.SanitizeError(err, cfg)
	}

	if err := pool.SetupConnectionPool(db, poolCfg); err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("failed to setup connection pool: %w", err)
	}

	return db, nil
}

// Open opens dialector with retries and checks the connection with a ping.
// Every failed attempt is logged as a warning.
func Open(
	ctx context.Context,
	dialector gorm.Dialector,
	retryCfg retry.Config,
	logger *zap.SugaredLogger,
) (*gorm.DB, error) {
	retryCfg.Notify = func(attempt int, err error, next time.Duration) {
		logger.Warnw("Database connection attempt failed",
			"attempt", attempt,
			"max_attempts", retryCfg.MaxAttempts,
			"retry_in", next,
			"error", err,
		)
	}

	gormCfg := &gorm.Config{
		Logger:         NewGormLogger(logger, DefaultSlowThreshold),
		TranslateError: true,
	}

	return retry.DoWithResult(ctx, retryCfg, func() (*gorm.DB, error) {
		db, err := gorm.Open(dialector, gormCfg)
		if err != nil {
			return nil, err
		}
		if err := HealthCheck(ctx, db); err != nil {
			_ = Close(db)
			return nil, err
		}
		return db, nil
	})
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the connection pool behind db. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetStats returns database connection pool statistics.
func GetStats(db *gorm.DB) (*sql.DBStats, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	stats := sqlDB.Stats()
	return &stats, nil
}

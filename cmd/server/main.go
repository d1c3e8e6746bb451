// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/challenge_tracker/internal/config"
	dbConfig "github.com/festy23/challenge_tracker/internal/database/config"
	"github.com/festy23/challenge_tracker/internal/database/database"
	"github.com/festy23/challenge_tracker/internal/database/migrate"
	"github.com/festy23/challenge_tracker/internal/database/pool"
	"github.com/festy23/challenge_tracker/internal/events"
	"github.com/festy23/challenge_tracker/internal/health"
	"github.com/festy23/challenge_tracker/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(os.Getenv("ENV_FILE"), ".env"); err != nil {
		log.Fatalf("failed to load env file: %v", err)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("Server stopped with error", "error", err)
	}
}

func run(cfg config.Config, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(
		ctx,
		dbConfig.LoadConfigFromEnv(),
		dbConfig.LoadRetryConfigFromEnv(),
		pool.LoadPoolConfigFromEnv(),
		logger,
	)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warnw("Failed to close database", "error", err)
		}
	}()

	if err := migrate.Migrate(db, migrate.GetMigrationsPath(), logger); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	publisher := events.New(cfg.Events, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warnw("Failed to close event publisher", "error", err)
		}
	}()

	gin.SetMode(cfg.GinMode)
	router := setupRouter(db, publisher, cfg.App.Location(), logger, health.DatabaseCheck(db))

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("Starting HTTP server", "address", srv.Addr, "timezone", cfg.App.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infow("Shutting down HTTP server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Infow("HTTP server stopped")
	return nil
}

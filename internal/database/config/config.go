// Package config provides database connection settings.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	appConfig "github.com/festy23/challenge_tracker/internal/config"
	"github.com/festy23/challenge_tracker/pkg/retry"
)

// Config holds PostgreSQL connection settings.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// LoadConfigFromEnv loads connection settings from DB_* environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     appConfig.GetEnv("DB_HOST", "localhost"),
		User:     appConfig.GetEnv("DB_USER", "postgres"),
		Password: appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   appConfig.GetEnv("DB_NAME", "challenge_tracker"),
		Port:     appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:  appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appConfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// Validate checks that the settings can produce a usable DSN.
func (c Config) Validate() error {
	var errs []error
	if c.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.User == "" {
		errs = append(errs, errors.New("DB_USER is required"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid DB_PORT: %q", c.Port))
	}
	return errors.Join(errs...)
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return c.dsn(c.Password)
}

// RedactedDSN is DSN with the password masked, safe to log.
func (c Config) RedactedDSN() string {
	return c.dsn("***")
}

func (c Config) dsn(password string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, password, c.DBName, c.Port, c.SSLMode, c.TimeZone)
}

// SanitizeError strips the password and the raw DSN from a connection error.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	msg := strings.ReplaceAll(err.Error(), cfg.DSN(), cfg.RedactedDSN())
	if cfg.Password != "" {
		msg = strings.ReplaceAll(msg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", msg)
}

// LoadRetryConfigFromEnv loads connection retry settings from DB_RETRY_*.
func LoadRetryConfigFromEnv() retry.Config {
	cfg := retry.PostgresConfig()
	cfg.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", cfg.MaxAttempts)
	cfg.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", cfg.InitialDelay)
	cfg.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", cfg.MaxDelay)
	cfg.Multiplier = appConfig.GetEnvFloat("DB_RETRY_MULTIPLIER", cfg.Multiplier)
	return cfg
}

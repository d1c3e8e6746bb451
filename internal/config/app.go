package config

import (
	"fmt"
	"time"
)

// AppConfig holds domain-level settings.
type AppConfig struct {
	// Timezone is the IANA zone in which progress dates are cut into calendar days.
	Timezone string
}

// LoadAppConfigFromEnv loads app configuration from environment variables.
func LoadAppConfigFromEnv() AppConfig {
	return AppConfig{
		Timezone: GetEnv("APP_TIMEZONE", "UTC"),
	}
}

// Validate validates app configuration.
func (c AppConfig) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the configured time zone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

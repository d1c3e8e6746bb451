package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string // empty listens on all interfaces
	Port string // ":8080" or "8080"

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration
}

// Server defaults.
const (
	DefaultPort            = ":8080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 2 * time.Minute
	DefaultShutdownTimeout = 15 * time.Second
)

// LoadServerConfigFromEnv reads SERVER_* variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:            GetEnv("SERVER_HOST", ""),
		Port:            GetEnv("SERVER_PORT", DefaultPort),
		ReadTimeout:     GetEnvDuration("SERVER_READ_TIMEOUT", DefaultReadTimeout),
		WriteTimeout:    GetEnvDuration("SERVER_WRITE_TIMEOUT", DefaultWriteTimeout),
		IdleTimeout:     GetEnvDuration("SERVER_IDLE_TIMEOUT", DefaultIdleTimeout),
		ShutdownTimeout: GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}
}

// GetAddress returns the listen address for http.Server.
func (c ServerConfig) GetAddress() string {
	if c.Host == "" {
		return c.Port
	}
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate validates server configuration.
func (c ServerConfig) Validate() error {
	positive := []struct {
		name  string
		value time.Duration
	}{
		{"ReadTimeout", c.ReadTimeout},
		{"WriteTimeout", c.WriteTimeout},
		{"IdleTimeout", c.IdleTimeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be greater than 0, got %s", p.name, p.value)
		}
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("ShutdownTimeout must be non-negative, got %s", c.ShutdownTimeout)
	}
	return nil
}

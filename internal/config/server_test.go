package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validServerConfig() ServerConfig {
	return ServerConfig{
		Port:            DefaultPort,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

func TestLoadServerConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT",
			"SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
		} {
			t.Setenv(key, "")
		}

		assert.Equal(t, validServerConfig(), LoadServerConfigFromEnv())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SERVER_READ_TIMEOUT", "30s")
		t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "1m")
		t.Setenv("SERVER_IDLE_TIMEOUT", "not-a-duration")

		cfg := LoadServerConfigFromEnv()
		assert.Equal(t, "0.0.0.0", cfg.Host)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
		assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
		assert.Equal(t, DefaultIdleTimeout, cfg.IdleTimeout, "unparsable value keeps the default")
	})
}

func TestServerConfig_GetAddress(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{host: "", port: ":8080", want: ":8080"},
		{host: "", port: "8080", want: "8080"},
		{host: "localhost", port: "8080", want: "localhost:8080"},
		{host: "0.0.0.0", port: ":8080", want: "0.0.0.0:8080"},
		{host: "::1", port: ":8080", want: "[::1]:8080"},
	}

	for _, tt := range tests {
		cfg := ServerConfig{Host: tt.host, Port: tt.port}
		assert.Equal(t, tt.want, cfg.GetAddress(), "%q %q", tt.host, tt.port)
	}
}

func TestServerConfig_Validate(t *testing.T) {
	require.NoError(t, validServerConfig().Validate())

	zeroShutdown := validServerConfig()
	zeroShutdown.ShutdownTimeout = 0
	assert.NoError(t, zeroShutdown.Validate())

	tests := []struct {
		field  string
		mutate func(*ServerConfig)
	}{
		{field: "ReadTimeout", mutate: func(c *ServerConfig) { c.ReadTimeout = 0 }},
		{field: "WriteTimeout", mutate: func(c *ServerConfig) { c.WriteTimeout = -time.Second }},
		{field: "IdleTimeout", mutate: func(c *ServerConfig) { c.IdleTimeout = 0 }},
		{field: "ShutdownTimeout", mutate: func(c *ServerConfig) { c.ShutdownTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

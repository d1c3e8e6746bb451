package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/festy23/challenge_tracker/internal/config"
)

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("LOG_OUTPUT", "stdout")

	logger, err := New()
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewWithConfig_Levels(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		enabled      zapcore.Level
		disabled     zapcore.Level
		checkDisable bool
	}{
		{name: "debug", level: "debug", enabled: zapcore.DebugLevel},
		{name: "info", level: "info", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel, checkDisable: true},
		{name: "warn", level: "warn", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel, checkDisable: true},
		{name: "uppercase", level: "ERROR", enabled: zapcore.ErrorLevel, disabled: zapcore.WarnLevel, checkDisable: true},
		{name: "unknown falls back to info", level: "verbose", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel, checkDisable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewWithConfig(appConfig.LoggerConfig{
				Level:  tt.level,
				Format: "json",
				Output: "stdout",
			})
			require.NoError(t, err)

			core := logger.Desugar().Core()
			assert.True(t, core.Enabled(tt.enabled))
			if tt.checkDisable {
				assert.False(t, core.Enabled(tt.disabled))
			}
		})
	}
}

func TestNewWithConfig_Formats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			logger, err := NewWithConfig(appConfig.LoggerConfig{
				Level:  "info",
				Format: format,
				Output: "stderr",
			})
			require.NoError(t, err)
			logger.Infow("formatted entry", "format", format)
		})
	}
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewWithConfig(appConfig.LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: path,
	})
	require.NoError(t, err)

	logger.Infow("progress recorded", "userId", "u-1")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "progress recorded")
	assert.Contains(t, string(data), `"service":"challenge-tracker"`)
	assert.Contains(t, string(data), `"userId":"u-1"`)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "stdout", outputPath(""))
	assert.Equal(t, "stdout", outputPath("stdout"))
	assert.Equal(t, "stderr", outputPath("stderr"))
	assert.Equal(t, "/var/log/app.log", outputPath("/var/log/app.log"))
}

func BenchmarkLoggerInfow(b *testing.B) {
	logger, _ := NewWithConfig(appConfig.LoggerConfig{
		Level:  "info",
		Format: "json",
		Output: "stderr",
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infow("benchmark message", "field1", "value1", "field2", 123)
	}
}

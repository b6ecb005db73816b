package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"moyudiary/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog(slog.LevelDebug)
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
	_, ok := logger.Handler().(*PrettyHandler)
	assert.True(t, ok)
}

func TestNewLoggerLevels(t *testing.T) {
	ctx := context.Background()

	// Prod - только INFO и выше
	prodLogger := New(config.EnvProd)
	assert.False(t, prodLogger.Enabled(ctx, slog.LevelDebug))
	assert.True(t, prodLogger.Enabled(ctx, slog.LevelInfo))

	// уровень из конфигурации важнее окружения
	quiet := New(config.EnvDev, WithLevel("warn"))
	assert.False(t, quiet.Enabled(ctx, slog.LevelInfo))
	assert.True(t, quiet.Enabled(ctx, slog.LevelWarn))

	// мусор игнорируется
	devLogger := New(config.EnvDev, WithLevel("loud"))
	assert.True(t, devLogger.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Output(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("component", "store"))

	log.Info("user logged in", slog.String("user", "alice"))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "user logged in")
	assert.Contains(t, out, `"component": "store"`)
	assert.Contains(t, out, `"user": "alice"`)
}

func TestPrettyHandler_Groups(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := slog.New(PrettyHandlerOptions{}.NewPrettyHandler(&buf)).
		WithGroup("request").
		With(slog.Int("id", 7))

	log.Info("served", slog.String("path", "/history"))

	out := buf.String()
	assert.Contains(t, out, "\"request\": {\n    \"id\": 7,\n    \"path\": \"/history\"\n  }")
	assert.NotContains(t, out, "\n  \"path\"")
}

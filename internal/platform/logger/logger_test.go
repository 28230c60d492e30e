package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/debatelab/debate-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		configured string
		enabled    slog.Level
		disabled   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"WARN", slog.LevelWarn, slog.LevelInfo}, // case-insensitive
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tc := range testCases {
		t.Run(tc.configured, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.configured})
			require.NotNil(t, logger)

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tc.enabled),
				"level %v should be enabled for configured level %q", tc.enabled, tc.configured)
			assert.False(t, logger.Enabled(ctx, tc.disabled),
				"level %v should be disabled for configured level %q", tc.disabled, tc.configured)
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	logger := Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})
	assert.Equal(t, logger, slog.Default())
}

func TestContextCarriage(t *testing.T) {
	ctx := context.Background()

	// Without a stored logger, FromContext falls back to the default.
	assert.Equal(t, slog.Default(), FromContext(ctx))

	scoped := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "test")
	ctx = WithLogger(ctx, scoped)

	assert.Equal(t, scoped, FromContext(ctx))
	assert.Equal(t, scoped, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(os.Stderr, nil))

	got := FromContextOrDefault(context.Background(), fallback)
	assert.Equal(t, fallback, got)

	got = FromContextOrDefault(context.Background(), nil)
	assert.Equal(t, slog.Default(), got)
}

package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattleIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := BattleIDFromContext(ctx)
	assert.False(t, ok, "empty context should carry no battle ID")

	id := GenerateBattleID()
	require.NotEmpty(t, id)

	ctx = WithBattleID(ctx, id)
	got, ok := BattleIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestConfigLogLevel(t *testing.T) {
	t.Run("known levels", func(t *testing.T) {
		assert.Equal(t, slog.LevelDebug, Config{Level: "debug"}.LogLevel())
		assert.Equal(t, slog.LevelWarn, Config{Level: "WARNING"}.LogLevel())
		assert.Equal(t, slog.LevelError, Config{Level: "error"}.LogLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		assert.Equal(t, slog.LevelInfo, Config{Level: "verbose"}.LogLevel())
	})
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: "text"}.IsJSON())
}

func TestFromContextWithoutID(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

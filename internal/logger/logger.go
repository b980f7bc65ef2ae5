package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	battleIDKey  ctxKey = "battleID"
	requestIDKey ctxKey = "requestID"
)

// GenerateBattleID creates a new UUID used to trace one battle across logs.
func GenerateBattleID() string {
	return uuid.NewString()
}

// WithBattleID returns a new context carrying the battle ID.
func WithBattleID(ctx context.Context, battleID string) context.Context {
	return context.WithValue(ctx, battleIDKey, battleID)
}

// BattleIDFromContext extracts the battle ID from the context, if present.
func BattleIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(battleIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GenerateRequestID creates a new UUID used to trace one HTTP request.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// FromContext returns a logger that includes the battle_id and request_id
// attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := BattleIDFromContext(ctx); ok {
		log = log.With("battle_id", id)
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		log = log.With("request_id", id)
	}
	return log
}

// Init installs the configured handler as the process-wide default logger.
func Init(cfg Config) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler.WithAttrs(cfg.BaseAttributes())))
}

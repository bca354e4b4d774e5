package slogx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}
type requestIDKey struct{}

// WithContext stores an operation-scoped logger in ctx. The command
// dispatcher seeds it once per invocation; everything below (services,
// transport) retrieves it with FromContext.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default when the
// context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// FromContextOr returns the logger stored in ctx, or fallback when the
// context carries none.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return fallback
}

// WithRequestID tags the contextual logger with reqID and keeps the raw ID
// retrievable, so Transport can stamp the same ID onto outgoing requests
// and backend logs line up with the client's.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	ctx = WithContext(ctx, FromContext(ctx).With("req_id", reqID))
	return context.WithValue(ctx, requestIDKey{}, reqID)
}

// RequestIDFrom returns the request ID stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

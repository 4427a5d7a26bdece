package logging

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// IntoContext returns a context carrying l.
func IntoContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger carried by ctx, or fallback (no-op when
// nil) if there is none.
func FromContext(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return OrNop(fallback)
}

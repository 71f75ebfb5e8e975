package httpapi

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

func withLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// requestLogger returns the request-scoped logger, or a no-op logger
// when the context carries none.
func requestLogger(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

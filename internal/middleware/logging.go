package middleware

import (
	"context"
	"time"

	"polyglot/internal/handler"

	"go.uber.org/zap"
)

// Middleware wraps a shell line handler
type Middleware func(next handler.LineFunc) handler.LineFunc

// Logging creates middleware that logs every shell line with its duration
func Logging(logger *zap.Logger) Middleware {
	return func(next handler.LineFunc) handler.LineFunc {
		return func(ctx context.Context, line string) bool {
			start := time.Now()
			proceed := next(ctx, line)

			logger.Debug("Shell line handled",
				zap.String("line", line),
				zap.Duration("duration", time.Since(start)),
				zap.Bool("proceed", proceed),
			)
			return proceed
		}
	}
}

// Recover creates middleware that turns a panic in a handler into an error log.
// The session goes on after a recovered panic.
func Recover(logger *zap.Logger) Middleware {
	return func(next handler.LineFunc) handler.LineFunc {
		return func(ctx context.Context, line string) (proceed bool) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic while handling shell line",
						zap.String("line", line),
						zap.Any("panic", r),
					)
					proceed = true
				}
			}()
			return next(ctx, line)
		}
	}
}

// Chain applies middleware so that the first one is the outermost
func Chain(h handler.LineFunc, mws ...Middleware) handler.LineFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

package database

import (
	"context"
	"time"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// ContextKeyQueryTimeout overrides the default timeout for reads.
	ContextKeyQueryTimeout ContextKey = "db_query_timeout"
	// ContextKeyExecuteTimeout overrides the default timeout for writes.
	ContextKeyExecuteTimeout ContextKey = "db_execute_timeout"
)

// WithQueryTimeout returns a context whose store reads use timeout.
func WithQueryTimeout(ctx context.Context, timeout time.Duration) context.Context {
	return context.WithValue(ctx, ContextKeyQueryTimeout, timeout)
}

// WithExecuteTimeout returns a context whose store writes use timeout.
func WithExecuteTimeout(ctx context.Context, timeout time.Duration) context.Context {
	return context.WithValue(ctx, ContextKeyExecuteTimeout, timeout)
}

// getTimeoutFromContext returns a context bounded by the timeout stored under
// key, or by defaultTimeout when none is set.
func getTimeoutFromContext(ctx context.Context, defaultTimeout time.Duration, key ContextKey) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := defaultTimeout
	if v, ok := ctx.Value(key).(time.Duration); ok && v > 0 {
		timeout = v
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger injects a request-scoped logger carrying the request ID, method,
// route and client IP. It must run after echo's RequestID middleware.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		l := slog.Default().With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", c.Request().Method,
			"path", c.Path(),
			"remote_ip", c.RealIP(),
		)
		setLogger(c, l)
		return next(c)
	}
}

func setLogger(c echo.Context, l *slog.Logger) {
	ctx := context.WithValue(c.Request().Context(), loggerKey, l)
	c.SetRequest(c.Request().WithContext(ctx))
}

// withUser tags the request logger with the signed-in user.
func withUser(c echo.Context, userID string) {
	setLogger(c, FromContext(c.Request().Context()).With("user_id", userID))
}

// FromContext returns the request logger, or the default logger outside a
// request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

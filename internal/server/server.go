// Package server assembles the echo instance: middleware, error handling and
// routes.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nexcard/nexcard/internal/auth"
	"github.com/nexcard/nexcard/internal/config"
	"github.com/nexcard/nexcard/internal/handlers"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// defaultAuthRateLimit is the number of auth form posts allowed per client
// IP and minute.
const defaultAuthRateLimit = 10

// Handlers groups every handler the routes point at.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Cards     *handlers.CardsHandler
	Wizard    *handlers.WizardHandler
	Dashboard *handlers.DashboardHandler
	Analytics *handlers.AnalyticsHandler
	Team      *handlers.TeamHandler
	Settings  *handlers.SettingsHandler
	Profile   *handlers.ProfileHandler
}

// Options are the collaborators of a Server.
type Options struct {
	Sessions *auth.Manager
	Renderer echo.Renderer
	Handlers Handlers
	// Metrics receives the HTTP metrics and backs /metrics. Nil means the
	// prometheus default registry.
	Metrics *prometheus.Registry
	// AuthRateLimit is the per-minute limit of auth posts; 0 means the
	// default.
	AuthRateLimit int
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	sessions *auth.Manager
	handlers Handlers
	metrics  *prometheus.Registry
	authRate int
}

// New creates the echo instance with the shared middleware stack. Routes
// are added by RegisterRoutes.
func New(cfg config.Provider, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = opts.Renderer
	e.Validator = handlers.NewValidator()

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			middleware.FromContext(c.Request().Context()).Debug("Request handled",
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(opts.Sessions.Middleware())

	setupErrorHandling(e)

	authRate := opts.AuthRateLimit
	if authRate <= 0 {
		authRate = defaultAuthRateLimit
	}

	return &Server{
		E:        e,
		Cfg:      cfg,
		sessions: opts.Sessions,
		handlers: opts.Handlers,
		metrics:  opts.Metrics,
		authRate: authRate,
	}
}

// setupErrorHandling installs the central error handler. Errors that are not
// echo.HTTPErrors are unexpected and get logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := "Something went wrong on our side. Please try again."
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = http.StatusText(code)
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			}
			if he.Internal != nil {
				logger.Warn("Request failed", "status", code, "error", he.Internal)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if c.Request().Header.Get("HX-Request") == "true" {
			_ = c.String(code, message)
			return
		}

		var renderErr error
		if code == http.StatusNotFound {
			renderErr = handlers.NotFound(c)
		} else {
			renderErr = handlers.ErrorPage(c, code, message)
		}
		if renderErr != nil {
			slog.Debug("Falling back to a plain error response", "error", renderErr)
			_ = c.String(code, message)
		}
	}
}

package server

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/handlers"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/nexcard/nexcard/web"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	h := s.handlers

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if s.metrics != nil {
		registerer, gatherer = s.metrics, s.metrics
	}
	s.E.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:                 "nexcard",
		Subsystem:                 "http",
		Registerer:                registerer,
		DoNotUseRequestPathFor404: true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	rateLimiter := middleware.RateLimiter(s.authRate)

	public := s.E.Group("", middleware.OptionalUser(s.sessions))
	public.GET("/", handlers.HomeGet)
	public.GET("/pricing", handlers.PricingGet)
	public.GET("/help", handlers.HelpGet)
	public.GET("/cards/:id", h.Cards.ViewGet)
	public.GET("/cards/:id/vcard", h.Cards.VCardGet)

	public.GET("/auth/login", h.Auth.LoginGet)
	public.POST("/auth/login", h.Auth.LoginPost, rateLimiter)
	public.GET("/auth/register", h.Auth.RegisterGet)
	public.POST("/auth/register", h.Auth.RegisterPost, rateLimiter)
	public.GET("/auth/logout", h.Auth.Logout)
	public.GET("/auth/forgot-password", h.Auth.ForgotPasswordGet)
	public.POST("/auth/forgot-password", h.Auth.ForgotPasswordPost, rateLimiter)
	public.GET("/auth/reset-password", h.Auth.ResetPasswordGet)
	public.POST("/auth/reset-password", h.Auth.ResetPasswordPost, rateLimiter)
	public.RouteNotFound("/*", handlers.NotFound)

	app := s.E.Group("/app", middleware.RequireUser(s.sessions))
	app.GET("", h.Dashboard.DashboardGet)

	app.GET("/cards", h.Cards.GalleryGet)
	app.POST("/cards/:id/delete", h.Cards.DeletePost)
	app.POST("/cards/:id/duplicate", h.Cards.DuplicatePost)

	app.GET("/cards/new", h.Wizard.NewGet)
	app.GET("/cards/:id/edit", h.Wizard.EditGet)
	app.POST("/wizard/field", h.Wizard.FieldPost)
	app.POST("/wizard/preview", h.Wizard.PreviewPost)
	app.POST("/wizard/next", h.Wizard.NextPost)
	app.POST("/wizard/back", h.Wizard.BackPost)
	app.POST("/wizard/save", h.Wizard.SavePost)

	app.GET("/analytics", h.Analytics.AnalyticsGet)
	app.GET("/analytics/ws", h.Analytics.LiveGet)

	app.GET("/team", h.Team.TeamGet)
	app.POST("/team/invite", h.Team.InvitePost)
	app.POST("/team/:id/role", h.Team.RolePost)
	app.POST("/team/:id/remove", h.Team.RemovePost)

	app.GET("/settings", h.Settings.SettingsGet)
	app.POST("/settings", h.Settings.SettingsPost)

	app.GET("/profile", h.Profile.ProfileGet)
	app.POST("/profile", h.Profile.ProfilePost)
}

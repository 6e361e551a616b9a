package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/analytics"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/nexcard/nexcard/internal/rendering"
	"github.com/nexcard/nexcard/web/src/templates/components"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

const liveWriteTimeout = 5 * time.Second

// AnalyticsHandler serves the analytics page and its live feed.
type AnalyticsHandler struct {
	tracker  *analytics.Tracker
	renderer rendering.Renderer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(tracker *analytics.Tracker, renderer rendering.Renderer) *AnalyticsHandler {
	return &AnalyticsHandler{tracker: tracker, renderer: renderer}
}

// AnalyticsGet renders the analytics page (GET /app/analytics?range=).
func (h *AnalyticsHandler) AnalyticsGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	snap := h.tracker.Snapshot(user.ID, analytics.ParseRange(c.QueryParam("range")))
	return renderApp(c, http.StatusOK, "Analytics", layouts.SectionAnalytics, pages.Analytics(snap))
}

// LiveGet upgrades to a websocket and pushes fresh stats fragments whenever
// the user's counters change (GET /app/analytics/ws?range=).
func (h *AnalyticsHandler) LiveGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	r := analytics.ParseRange(c.QueryParam("range"))

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("Failed to upgrade analytics WebSocket", "error", err)
		return nil
	}
	defer conn.CloseNow()

	logger := middleware.FromContext(c.Request().Context())
	changes, stop := h.tracker.Watch(user.ID)
	defer stop()

	// The page never sends anything; CloseRead ends ctx when the client goes away.
	ctx := conn.CloseRead(c.Request().Context())
	logger.Debug("Analytics feed connected", "user_id", user.ID, "range", r)

	push := func() error {
		body, err := h.renderer.Fragment(ctx, components.LiveUpdate(h.tracker.Snapshot(user.ID, r)))
		if err != nil {
			logger.Error("Failed to render analytics update", "error", err)
			return nil
		}
		return write(ctx, conn, body)
	}

	// The first push covers anything that happened between page load and
	// the watch starting.
	if err := push(); err != nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Analytics feed closed", "user_id", user.ID)
			return nil
		case <-changes:
			if err := push(); err != nil {
				if websocket.CloseStatus(err) == -1 && ctx.Err() == nil {
					logger.Warn("Analytics feed write failed", "error", err)
				}
				return nil
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, liveWriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, body)
}

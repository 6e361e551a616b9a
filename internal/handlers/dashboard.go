package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/analytics"
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/nexcard/nexcard/internal/team"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

// DashboardHandler handles requests for the user dashboard.
type DashboardHandler struct {
	cards   *cards.Service
	tracker *analytics.Tracker
	roster  *team.Roster
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *cards.Service, tracker *analytics.Tracker, roster *team.Roster) *DashboardHandler {
	return &DashboardHandler{cards: svc, tracker: tracker, roster: roster}
}

// DashboardGet shows the user's dashboard page.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	list, err := h.cards.List(c.Request().Context(), user.ID, cards.Query{Sort: cards.SortNewest})
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	return renderApp(c, http.StatusOK, "Dashboard", layouts.SectionDashboard, pages.Dashboard(pages.DashboardData{
		User:     *user,
		Cards:    list,
		Stats:    h.tracker.Snapshot(user.ID, analytics.RangeAll),
		TeamSize: h.roster.Size(teamOf(user)),
	}))
}

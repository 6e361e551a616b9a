package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/settings"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

// SettingsHandler serves the account settings page.
type SettingsHandler struct {
	prefs *settings.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(prefs *settings.Store) *SettingsHandler {
	return &SettingsHandler{prefs: prefs}
}

// SettingsGet renders the settings form (GET /app/settings).
func (h *SettingsHandler) SettingsGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return renderApp(c, http.StatusOK, "Settings", layouts.SectionSettings, pages.Settings(pages.SettingsData{
		User:  *user,
		Prefs: h.prefs.Get(*user),
	}))
}

// SettingsPost saves the form (POST /app/settings). Unchecked boxes are
// absent from the form and bind as false.
func (h *SettingsHandler) SettingsPost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var p settings.Preferences
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if _, err := h.prefs.Update(user.ID, p); err != nil {
		return renderApp(c, http.StatusUnprocessableEntity, "Settings", layouts.SectionSettings, pages.Settings(pages.SettingsData{
			User:    *user,
			Prefs:   p,
			Problem: "Please check your settings: a display name, card theme and appearance are required.",
		}))
	}

	view.SetFlashSuccess(c, "Settings saved.")
	return c.Redirect(http.StatusSeeOther, "/app/settings")
}

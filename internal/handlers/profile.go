package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/settings"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

// ProfileHandler serves the personal profile page.
type ProfileHandler struct {
	store *settings.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store *settings.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// ProfileGet shows the profile (GET /app/profile), or the edit form with
// ?edit=1.
func (h *ProfileHandler) ProfileGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return renderApp(c, http.StatusOK, "My Profile", layouts.SectionProfile, pages.Profile(pages.ProfileData{
		User:    *user,
		Profile: h.store.Profile(*user),
		Editing: c.QueryParam("edit") == "1",
	}))
}

// ProfilePost saves the profile form (POST /app/profile).
func (h *ProfileHandler) ProfilePost(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var p settings.Profile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	if _, err := h.store.UpdateProfile(user.ID, p); err != nil {
		return renderApp(c, http.StatusUnprocessableEntity, "My Profile", layouts.SectionProfile, pages.Profile(pages.ProfileData{
			User:    *user,
			Profile: p,
			Editing: true,
			Problem: "Please check your profile: a name is required and fields must not be too long.",
		}))
	}

	view.SetFlashSuccess(c, "Profile updated.")
	return c.Redirect(http.StatusSeeOther, "/app/profile")
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// renderPage renders content inside the public layout.
func renderPage(c echo.Context, status int, title string, content g.Node) error {
	user, _ := middleware.CurrentUser(c)
	page := layouts.Base(title, user, view.GetFlashData(c), view.AdaptGomponentToTempl(content))
	return c.Render(status, "", page)
}

// renderApp renders content inside the signed-in layout.
func renderApp(c echo.Context, status int, title string, section layouts.Section, content g.Node) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	page := layouts.App(title, *user, section, view.GetFlashData(c), view.AdaptGomponentToTempl(content))
	return c.Render(status, "", page)
}

// renderFragment renders a bare node, for htmx swaps.
func renderFragment(c echo.Context, content g.Node) error {
	return c.Render(http.StatusOK, "", content)
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// currentUser is the user RequireUser placed in the context. Handlers
// mounted behind RequireUser can rely on it being set.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, echo.ErrUnauthorized
	}
	return user, nil
}

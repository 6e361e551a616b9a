package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/help"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/nexcard/nexcard/internal/pricing"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

// HomeGet renders the marketing home page.
func HomeGet(c echo.Context) error {
	_, signedIn := middleware.CurrentUser(c)
	return renderPage(c, http.StatusOK, "Home", pages.Home(signedIn))
}

// PricingGet renders the pricing page for ?billing=monthly|annually.
func PricingGet(c echo.Context) error {
	billing := pricing.ParseBilling(c.QueryParam("billing"))
	return renderPage(c, http.StatusOK, "Pricing", pages.Pricing(billing))
}

// HelpGet renders the help centre. An htmx search only gets the FAQ list.
func HelpGet(c echo.Context) error {
	q := c.QueryParam("q")
	faqs := help.Search(q)
	if isHTMX(c) {
		return renderFragment(c, pages.FAQList(faqs))
	}
	return renderPage(c, http.StatusOK, "Help Center", pages.Help(q, faqs, help.Guides()))
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// NotFound renders the generic 404 page.
func NotFound(c echo.Context) error {
	return renderPage(c, http.StatusNotFound, "Not Found", pages.NotFound())
}

// ErrorPage renders the generic error page with the given status.
func ErrorPage(c echo.Context, code int, message string) error {
	return renderPage(c, code, "Error", pages.Error(code, message))
}

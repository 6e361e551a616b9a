package pages

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func panel(heading, text string) g.Node {
	return h.Div(
		h.Class("max-w-md mx-auto my-16 bg-white rounded-lg shadow p-8 text-center"),
		h.H2(h.Class("text-xl font-semibold mb-2"), g.Text(heading)),
		h.P(h.Class("text-gray-600 mb-4"), g.Text(text)),
		h.A(h.Href("/"), h.Class("btn-primary"), g.Text("Return Home")),
	)
}

// CardNotFound is shown when a card id does not resolve.
func CardNotFound() g.Node {
	return panel("Card Not Found", "This business card doesn't exist or has been removed.")
}

// NotFound is the generic 404 page.
func NotFound() g.Node {
	return panel("Page Not Found", "The page you're looking for doesn't exist or has been moved.")
}

// Error is the page rendered for unhandled errors.
func Error(code int, message string) g.Node {
	return panel(fmt.Sprintf("Error %d", code), message)
}

package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSSrc = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
	tailwind  = "https://cdn.tailwindcss.com"
)

func document(title string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(CalculateTitle(title))),
				h.Script(h.Src(tailwind)),
				h.Script(h.Src(htmxSrc)),
				h.Script(h.Src(htmxWSSrc)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
			),
			h.Body(
				h.Class("min-h-screen bg-gray-50 text-gray-900"),
				g.Group(body),
			),
		),
	)
}

func navbar(user *domain.User) g.Node {
	return h.Header(
		h.Class("bg-white border-b border-gray-200"),
		h.Nav(
			h.Class("max-w-7xl mx-auto px-4 h-16 flex items-center justify-between"),
			h.A(h.Href("/"), h.Class("text-xl font-bold text-indigo-600"), g.Text("NexCard")),
			h.Div(
				h.Class("flex items-center gap-6 text-sm"),
				h.A(h.Href("/pricing"), h.Class("text-gray-600 hover:text-gray-900"), g.Text("Pricing")),
				h.A(h.Href("/help"), h.Class("text-gray-600 hover:text-gray-900"), g.Text("Help")),
				g.If(user == nil, g.Group{
					h.A(h.Href("/auth/login"), h.Class("text-gray-600 hover:text-gray-900"), g.Text("Sign In")),
					h.A(h.Href("/auth/register"), h.Class("btn-primary"), g.Text("Get Started")),
				}),
				g.If(user != nil, h.A(h.Href("/app"), h.Class("btn-primary"), g.Text("Dashboard"))),
			),
		),
	)
}

func footer() g.Node {
	return h.Footer(
		h.Class("mt-16 border-t border-gray-200 py-8 text-center text-sm text-gray-500"),
		g.Text("© 2025 NexCard. All rights reserved."),
	)
}

// Base wraps a public page in the marketing shell.
func Base(title string, user *domain.User, flash view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(title,
			navbar(user),
			h.Main(
				view.AdaptTemplToGomponentCtx(ctx, partials.Flash(flash)),
				view.AdaptTemplToGomponentCtx(ctx, content),
			),
			footer(),
		).Render(w)
	})
}

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

// Section identifies the active sidebar entry.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionCards     Section = "cards"
	SectionCreate    Section = "create"
	SectionAnalytics Section = "analytics"
	SectionTeam      Section = "team"
	SectionSettings  Section = "settings"
	SectionProfile   Section = "profile"
)

type sidebarLink struct {
	section Section
	label   string
	href    string
}

var sidebarLinks = []sidebarLink{
	{SectionDashboard, "Dashboard", "/app"},
	{SectionCards, "My Cards", "/app/cards"},
	{SectionCreate, "Create Card", "/app/cards/new"},
	{SectionAnalytics, "Analytics", "/app/analytics"},
	{SectionTeam, "Team", "/app/team"},
	{SectionProfile, "My Profile", "/app/profile"},
	{SectionSettings, "Settings", "/app/settings"},
}

func sidebar(user domain.User, active Section) g.Node {
	return h.Aside(
		h.Class("w-64 shrink-0 bg-white border-r border-gray-200 min-h-screen flex flex-col"),
		h.A(h.Href("/"), h.Class("h-16 px-6 flex items-center text-xl font-bold text-indigo-600"), g.Text("NexCard")),
		h.Nav(
			h.Class("flex-1 px-3 space-y-1"),
			g.Map(sidebarLinks, func(l sidebarLink) g.Node {
				cls := "block px-3 py-2 rounded-md text-sm text-gray-700 hover:bg-gray-100"
				if l.section == active {
					cls = "block px-3 py-2 rounded-md text-sm font-medium bg-indigo-50 text-indigo-700"
				}
				return h.A(h.Href(l.href), h.Class(cls), g.Text(l.label))
			}),
		),
		h.Div(
			h.Class("px-6 py-4 border-t border-gray-200 text-sm"),
			h.P(h.Class("font-medium"), g.Text(user.Name)),
			h.P(h.Class("text-gray-500 truncate"), g.Text(user.Email)),
			h.Div(
				h.Class("mt-3 flex gap-4"),
				h.A(h.Href("/help"), h.Class("text-gray-500 hover:text-gray-900"), g.Text("Help")),
				h.A(h.Href("/auth/logout"), h.Class("text-gray-500 hover:text-gray-900"), g.Text("Sign Out")),
			),
		),
	)
}

// App wraps a signed-in page in the dashboard shell with its sidebar.
func App(title string, user domain.User, active Section, flash view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(title,
			h.Div(
				h.Class("flex"),
				sidebar(user, active),
				h.Main(
					h.Class("flex-1 p-8"),
					view.AdaptTemplToGomponentCtx(ctx, partials.Flash(flash)),
					view.AdaptTemplToGomponentCtx(ctx, content),
				),
			),
		).Render(w)
	})
}

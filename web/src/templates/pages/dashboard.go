package pages

import (
	"github.com/nexcard/nexcard/internal/analytics"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DashboardData is everything the dashboard shows.
type DashboardData struct {
	User     domain.User
	Cards    []domain.Card
	Stats    analytics.Snapshot
	TeamSize int
}

const dashboardRecentCards = 3

// Dashboard is the signed-in landing page.
func Dashboard(d DashboardData) g.Node {
	recent := d.Cards
	if len(recent) > dashboardRecentCards {
		recent = recent[:dashboardRecentCards]
	}

	return g.Group{
		h.Div(
			h.Class("flex items-center justify-between mb-8"),
			h.Div(
				h.H1(h.Class("text-2xl font-bold"), g.Text("Dashboard")),
				h.P(h.Class("text-gray-600"), g.Textf("Welcome back, %s", d.User.Name)),
			),
			h.A(h.Href("/app/cards/new"), h.Class("btn-primary"), g.Text("Create New Card")),
		),
		h.Div(
			h.Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-8"),
			components.StatCard("Total Cards", len(d.Cards)),
			components.StatCard("Card Views", d.Stats.Views),
			components.StatCard("Saves", d.Stats.Saves),
			components.StatCard("Team Size", d.TeamSize),
		),
		h.Div(
			h.Class("grid md:grid-cols-2 gap-6"),
			h.Div(
				h.Class("bg-white rounded-lg shadow p-5"),
				h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Your Cards")),
				g.If(len(recent) == 0, h.P(
					h.Class("text-sm text-gray-500"),
					g.Text("You haven't created any cards yet. "),
					h.A(h.Href("/app/cards/new"), h.Class("text-indigo-600"), g.Text("Create your first card")),
				)),
				h.Ul(
					h.Class("space-y-3"),
					g.Map(recent, func(c domain.Card) g.Node {
						return h.Li(
							h.Class("rounded-md border border-gray-100 overflow-hidden"),
							components.ColorStrip(c.Theme),
							h.Div(
								h.Class("px-3 py-2 flex justify-between text-sm"),
								h.A(h.Href("/cards/"+c.ID), h.Class("font-medium"), g.Text(c.Title)),
								h.A(h.Href("/app/cards/"+c.ID+"/edit"), h.Class("text-indigo-600"), g.Text("Edit")),
							),
						)
					}),
				),
				h.A(h.Href("/app/cards"), h.Class("mt-4 inline-block text-sm text-indigo-600"), g.Text("View all cards")),
			),
			components.Activity(d.Stats, false),
		),
		h.Div(
			h.Class("mt-6 bg-white rounded-lg shadow p-5"),
			h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Quick Links")),
			h.Div(
				h.Class("flex flex-wrap gap-4 text-sm"),
				h.A(h.Href("/app/analytics"), h.Class("text-indigo-600"), g.Text("Analytics")),
				h.A(h.Href("/app/team"), h.Class("text-indigo-600"), g.Text("Team")),
				h.A(h.Href("/app/settings"), h.Class("text-indigo-600"), g.Text("Settings")),
				h.A(h.Href("/help"), h.Class("text-indigo-600"), g.Text("Help Center")),
			),
		),
	}
}

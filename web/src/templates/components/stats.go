package components

import (
	"github.com/nexcard/nexcard/internal/analytics"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Element ids swapped by the analytics live feed.
const (
	StatsID    = "analytics-stats"
	PopularID  = "analytics-popular"
	ActivityID = "analytics-activity"
)

// StatCard is a single labelled number.
func StatCard(label string, value int) g.Node {
	return h.Div(
		h.Class("bg-white rounded-lg shadow p-5"),
		h.P(h.Class("text-sm text-gray-500"), g.Text(label)),
		h.P(h.Class("mt-1 text-3xl font-semibold"), g.Textf("%d", value)),
	)
}

func oob(swap bool) g.Node {
	return g.If(swap, hx.SwapOOB("true"))
}

// Stats renders the totals of a snapshot. With swap set it is an
// out-of-band fragment for the websocket feed.
func Stats(s analytics.Snapshot, swap bool) g.Node {
	return h.Div(
		h.ID(StatsID), oob(swap),
		h.Class("grid grid-cols-2 md:grid-cols-4 gap-4"),
		StatCard("Total Views", s.Views),
		StatCard("Saves", s.Saves),
		StatCard("Duplicates", s.Duplicates),
		StatCard("Deletes", s.Deletes),
	)
}

// Popular lists the most viewed cards of a snapshot.
func Popular(s analytics.Snapshot, swap bool) g.Node {
	return h.Div(
		h.ID(PopularID), oob(swap),
		h.Class("bg-white rounded-lg shadow p-5"),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Your Popular Cards")),
		g.If(len(s.Popular) == 0, h.P(h.Class("text-sm text-gray-500"), g.Text("No card views yet."))),
		h.Ul(
			h.Class("divide-y divide-gray-100"),
			g.Map(s.Popular, func(c analytics.CardStats) g.Node {
				return h.Li(
					h.Class("py-2 flex items-center justify-between text-sm"),
					h.Div(
						h.Class("flex items-center gap-2"),
						ThemeDot(c.Theme),
						h.A(h.Href("/cards/"+c.CardID), g.Text(c.Title)),
					),
					h.Span(h.Class("text-gray-500"), g.Textf("%d views", c.Views)),
				)
			}),
		),
	)
}

// Activity is the recent activity feed of a snapshot.
func Activity(s analytics.Snapshot, swap bool) g.Node {
	return h.Div(
		h.ID(ActivityID), oob(swap),
		h.Class("bg-white rounded-lg shadow p-5"),
		h.H2(h.Class("text-lg font-semibold mb-3"), g.Text("Recent Activity")),
		g.If(len(s.Recent) == 0, h.P(h.Class("text-sm text-gray-500"), g.Text("Nothing has happened yet."))),
		h.Ul(
			h.Class("space-y-2"),
			g.Map(s.Recent, func(a analytics.Activity) g.Node {
				return h.Li(
					h.Class("text-sm"),
					h.Span(h.Class("font-medium"), g.Text(a.Describe())),
					g.Text(": "+a.Title),
					h.Span(h.Class("ml-2 text-xs text-gray-400"), g.Text(a.At.Format("Jan 2 15:04"))),
				)
			}),
		),
	)
}

// LiveUpdate bundles every out-of-band fragment pushed to a connected
// analytics page.
func LiveUpdate(s analytics.Snapshot) g.Node {
	return g.Group{Stats(s, true), Popular(s, true), Activity(s, true)}
}

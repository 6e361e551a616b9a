package pages

import (
	"github.com/nexcard/nexcard/internal/analytics"
	"github.com/nexcard/nexcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

func rangeSelector(current analytics.Range) g.Node {
	return h.Div(
		h.Class("flex gap-2 text-sm"),
		g.Map(analytics.Ranges, func(r analytics.Range) g.Node {
			cls := "px-3 py-1 rounded-md border"
			if r == current {
				cls += " bg-indigo-600 text-white border-indigo-600"
			}
			return h.A(h.Href("/app/analytics?range="+string(r)), h.Class(cls), g.Text(r.Label()))
		}),
	)
}

// Analytics is the analytics page. It connects to the live feed, which
// pushes out-of-band replacements of the stats blocks.
func Analytics(s analytics.Snapshot) g.Node {
	return h.Div(
		hx.Ext("ws"),
		g.Attr("ws-connect", "/app/analytics/ws?range="+string(s.Range)),
		h.Div(
			h.Class("flex items-center justify-between mb-6"),
			h.H1(h.Class("text-2xl font-bold"), g.Text("Analytics")),
			rangeSelector(s.Range),
		),
		h.Div(h.Class("mb-6"), components.Stats(s, false)),
		h.Div(
			h.Class("grid md:grid-cols-2 gap-6"),
			components.Popular(s, false),
			components.Activity(s, false),
		),
	)
}

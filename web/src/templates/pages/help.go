package pages

import (
	"github.com/nexcard/nexcard/internal/help"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// FAQListID is the element the help search swaps.
const FAQListID = "faq-list"

// FAQList renders the questions matching the current search.
func FAQList(faqs []help.FAQ) g.Node {
	return h.Div(
		h.ID(FAQListID),
		h.Class("space-y-3"),
		g.If(len(faqs) == 0, h.Div(
			h.Class("text-center text-gray-500 py-8"),
			h.P(g.Text("No results found")),
			h.P(h.Class("text-sm"), g.Text("Try a different search term or browse the categories above")),
		)),
		g.Map(faqs, func(f help.FAQ) g.Node {
			return h.Details(
				h.Class("bg-white rounded-lg shadow p-4"),
				h.Summary(h.Class("font-medium cursor-pointer"), g.Text(f.Question)),
				h.P(h.Class("mt-3 text-gray-600"), g.Text(f.Answer)),
			)
		}),
	)
}

// Help is the help centre page.
func Help(query string, faqs []help.FAQ, guides []help.Guide) g.Node {
	return h.Section(
		h.Class("max-w-4xl mx-auto px-4 py-12"),
		h.H1(h.Class("text-4xl font-bold text-center"), g.Text("Help Center")),
		h.Form(
			h.Method("get"), h.Action("/help"), h.Class("mt-8"),
			h.Input(
				h.Type("search"), h.Name("q"), h.Value(query),
				h.Placeholder("Search for help..."), h.Class("form-input"),
				hx.Get("/help"), hx.Trigger("input changed delay:300ms, search"),
				hx.Target("#"+FAQListID), hx.Swap("outerHTML"),
			),
		),
		h.Div(
			h.Class("mt-10 grid md:grid-cols-2 gap-4"),
			g.Map(guides, func(gd help.Guide) g.Node {
				return h.Div(
					h.Class("bg-white rounded-lg shadow p-5"),
					h.H3(h.Class("font-semibold"), g.Text(gd.Title)),
					h.P(h.Class("text-sm text-gray-600"), g.Text(gd.Description)),
				)
			}),
		),
		h.H2(h.Class("mt-12 mb-4 text-2xl font-bold"), g.Text("Frequently Asked Questions")),
		FAQList(faqs),
		h.Div(
			h.Class("mt-12 bg-indigo-50 rounded-lg p-6 text-center"),
			h.H2(h.Class("text-xl font-semibold"), g.Text("Still Need Help?")),
			h.P(h.Class("mt-2 text-gray-600"), g.Text("Email Support: support@nexcard.example")),
		),
	)
}

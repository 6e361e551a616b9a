package pages

import (
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/theme"
	"github.com/nexcard/nexcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// CardGridID is the element the gallery filters swap.
const CardGridID = "card-grid"

// CardGrid is the list of cards matching the current filters.
func CardGrid(list []domain.Card, filtered bool) g.Node {
	if len(list) == 0 {
		msg := "You haven't created any cards yet."
		if filtered {
			msg = "No cards match your search."
		}
		return h.Div(
			h.ID(CardGridID),
			h.Class("bg-white rounded-lg shadow p-10 text-center text-gray-500"),
			h.P(g.Text(msg)),
			g.If(!filtered, h.A(h.Href("/app/cards/new"), h.Class("btn-primary mt-4"), g.Text("Create New Card"))),
		)
	}
	return h.Div(
		h.ID(CardGridID),
		h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
		g.Map(list, components.CardTile),
	)
}

func selectOption(value, label, current string) g.Node {
	return h.Option(h.Value(value), g.If(value == current, h.Selected()), g.Text(label))
}

// Gallery is the "My Cards" page with search, sort and theme filter.
func Gallery(list []domain.Card, q cards.Query) g.Node {
	live := g.Group{
		hx.Get("/app/cards"),
		hx.Target("#" + CardGridID),
		hx.Swap("outerHTML"),
		hx.Include("closest form"),
		hx.PushURL("true"),
	}
	filtered := q.Search != "" || (q.Theme != "" && q.Theme != cards.ThemeAll)

	return g.Group{
		h.Div(
			h.Class("flex items-center justify-between mb-6"),
			h.H1(h.Class("text-2xl font-bold"), g.Text("My Cards")),
			h.A(h.Href("/app/cards/new"), h.Class("btn-primary"), g.Text("Create New Card")),
		),
		h.Form(
			h.Method("get"), h.Action("/app/cards"),
			h.Class("flex flex-wrap gap-4 mb-6"),
			h.Input(
				h.Type("search"), h.Name("q"), h.Value(q.Search),
				h.Placeholder("Search cards..."), h.Class("form-input flex-1"),
				live, hx.Trigger("input changed delay:300ms, search"),
			),
			h.Select(
				h.Name("sort"), h.Class("form-input w-auto"), live, hx.Trigger("change"),
				selectOption(string(cards.SortNewest), "Newest First", string(q.Sort)),
				selectOption(string(cards.SortOldest), "Oldest First", string(q.Sort)),
				selectOption(string(cards.SortName), "Name (A-Z)", string(q.Sort)),
			),
			h.Select(
				h.Name("theme"), h.Class("form-input w-auto"), live, hx.Trigger("change"),
				selectOption(cards.ThemeAll, "All Themes", q.Theme),
				g.Map(theme.Default().All(), func(d theme.Definition) g.Node {
					return selectOption(string(d.ID), d.Name, q.Theme)
				}),
			),
			h.NoScript(h.Button(h.Type("submit"), h.Class("btn-secondary"), g.Text("Filter"))),
		),
		CardGrid(list, filtered),
	}
}

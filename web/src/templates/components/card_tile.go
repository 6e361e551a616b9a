package components

import (
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/theme"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// DateFormat is how card dates are printed.
const DateFormat = "Jan 2, 2006"

// CardTile is one card of the gallery grid with its actions.
func CardTile(c domain.Card) g.Node {
	return h.Div(
		h.ID("card-"+c.ID),
		h.Class("bg-white rounded-lg shadow overflow-hidden"),
		ColorStrip(c.Theme),
		h.Div(
			h.Class("p-5"),
			h.H3(h.Class("text-lg font-semibold"), g.Text(c.Title)),
			h.P(h.Class("text-sm text-gray-600"), g.Text(c.Profile.FullName)),
			h.P(h.Class("text-sm text-gray-500"), g.Textf("%s · %s", c.Profile.Title, c.Profile.Company)),
			h.P(
				h.Class("mt-2 text-xs text-gray-400"),
				g.Textf("%s theme · Updated %s", theme.DisplayName(c.Theme), c.UpdatedAt.Format(DateFormat)),
			),
			h.Div(
				h.Class("mt-4 flex items-center gap-3 text-sm"),
				h.A(h.Href("/cards/"+c.ID), h.Class("text-indigo-600"), g.Text("View")),
				h.A(h.Href("/app/cards/"+c.ID+"/edit"), h.Class("text-indigo-600"), g.Text("Edit")),
				h.Form(
					h.Method("post"), h.Action("/app/cards/"+c.ID+"/duplicate"),
					h.Button(h.Type("submit"), h.Class("text-gray-600"), g.Text("Duplicate")),
				),
				h.Form(
					h.Method("post"), h.Action("/app/cards/"+c.ID+"/delete"),
					hx.Confirm("Are you sure you want to delete this card?"),
					h.Button(h.Type("submit"), h.Class("btn-danger"), g.Text("Delete")),
				),
			),
		),
	)
}

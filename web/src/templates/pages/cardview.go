package pages

import (
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/preview"
	"github.com/nexcard/nexcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CardView is the public page of a saved card.
func CardView(c domain.Card, shareURL string, owner bool) g.Node {
	return h.Div(
		h.Class("max-w-5xl mx-auto px-4 py-12 grid md:grid-cols-3 gap-8"),
		h.Div(
			h.Class("md:col-span-2"),
			h.A(h.Href("/"), h.Class("text-sm text-gray-500"), g.Text("← Back")),
			h.H1(h.Class("mt-2 mb-6 text-2xl font-bold"), g.Text(c.Title)),
			components.CardPreview(preview.ReadView(c)),
		),
		h.Div(
			h.Class("space-y-6"),
			h.Div(
				h.Class("bg-white rounded-lg shadow p-5"),
				h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Share This Card")),
				h.Input(h.Type("text"), h.ReadOnly(), h.Value(shareURL), h.Class("form-input text-sm")),
			),
			h.Div(
				h.Class("bg-white rounded-lg shadow p-5"),
				h.H2(h.Class("text-lg font-semibold mb-4"), g.Text("Save Contact")),
				h.A(
					h.Href("/cards/"+c.ID+"/vcard"), g.Attr("download"),
					h.Class("btn-primary w-full justify-center"), g.Text("Download vCard"),
				),
			),
			g.If(owner, h.A(h.Href("/app/cards/"+c.ID+"/edit"), h.Class("btn-secondary w-full justify-center"), g.Text("Edit Card"))),
		),
	)
}

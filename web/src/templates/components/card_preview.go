package components

import (
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/preview"
	"github.com/nexcard/nexcard/internal/theme"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PreviewID is the element the wizard's live preview swaps.
const PreviewID = "card-preview"

func lineClass(l preview.Line, class string) string {
	if l.Placeholder {
		return class + " placeholder-text"
	}
	return class
}

func contactRow(icon string, l preview.Line, iconClass string) g.Node {
	return h.Div(
		h.Class("flex items-center"),
		h.Span(h.Class("w-5 text-center "+iconClass), g.Text(icon)),
		h.Span(h.Class(lineClass(l, "ml-3 text-sm")), g.Text(l.Text)),
	)
}

// CardPreview draws a business card from its display model.
func CardPreview(v preview.VisualCard) g.Node {
	st := v.Theme.Styles
	footer := "bg-gray-50"
	if v.FooterDark {
		footer = "bg-gray-800"
	}

	return h.Div(
		h.ID(PreviewID),
		h.Class("w-full max-w-sm mx-auto overflow-hidden rounded-xl shadow-md border "+st.Card),
		g.Attr("data-theme", string(v.Theme.ID)),
		h.Div(
			h.Class("px-6 py-4 "+st.Header),
			h.Div(
				h.Class("flex items-center"),
				h.Div(
					h.Class("h-16 w-16 rounded-full bg-white flex items-center justify-center text-2xl font-bold text-gray-700"),
					g.Text(v.Initial()),
				),
				h.Div(
					h.Class("ml-4"),
					h.H2(h.Class(lineClass(v.Name, "text-xl font-bold "+st.Name)), g.Text(v.Name.Text)),
					h.P(h.Class(lineClass(v.Title, st.Title)), g.Text(v.Title.Text)),
					h.P(h.Class(lineClass(v.Company, "text-sm "+st.Company)), g.Text(v.Company.Text)),
				),
			),
		),
		h.Div(
			h.Class("px-6 py-4 space-y-3"),
			contactRow("@", v.Email, st.Icon),
			contactRow("☎", v.Phone, st.Icon),
			g.If(v.ShowWebsite, contactRow("⌂", v.Website, st.Icon)),
			g.If(v.ShowAddress, contactRow("⌖", v.Address, st.Icon)),
		),
		h.Div(
			h.Class("px-6 py-2 flex justify-between items-center "+footer),
			h.Span(h.Class("text-xs text-gray-500"), g.Text("Scan to connect")),
		),
	)
}

// ColorStrip is the thin theme-coloured bar on top of gallery and dashboard tiles.
func ColorStrip(t domain.Theme) g.Node {
	return h.Div(h.Class("h-2 " + theme.StripClass(t)))
}

// ThemeDot is a small round swatch of the theme colour.
func ThemeDot(t domain.Theme) g.Node {
	return h.Span(h.Class("inline-block h-3 w-3 rounded-full " + theme.StripClass(t)))
}

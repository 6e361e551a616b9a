package pages

import (
	"github.com/nexcard/nexcard/internal/pricing"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type feature struct {
	title, text string
}

var features = []feature{
	{"Stunning Templates", "Choose from a library of professional templates designed to impress."},
	{"Team Management", "Easily manage cards for your entire team with admin controls."},
	{"Easy Sharing", "Share your card by direct link or as a contact file with anyone."},
	{"Data Security", "Your business information is protected with enterprise-grade security."},
}

// Home is the marketing landing page.
func Home(signedIn bool) g.Node {
	cta := h.A(h.Href("/auth/register"), h.Class("btn-primary"), g.Text("Get Started Free"))
	if signedIn {
		cta = h.A(h.Href("/app/cards/new"), h.Class("btn-primary"), g.Text("Create a Card"))
	}

	return g.Group{
		h.Section(
			h.Class("bg-indigo-700 text-white py-20"),
			h.Div(
				h.Class("max-w-5xl mx-auto px-4"),
				h.H1(h.Class("text-5xl font-bold leading-tight mb-6"), g.Text("Digital Business Cards for Modern Professionals")),
				h.P(h.Class("text-xl text-indigo-100 mb-8"), g.Text("Create, customize, and share your digital business card in minutes. Make a lasting impression with interactive, eco-friendly cards.")),
				h.Div(
					h.Class("flex gap-4"),
					cta,
					h.A(h.Href("/pricing"), h.Class("btn-secondary"), g.Text("See Pricing")),
				),
			),
		),
		h.Section(
			h.Class("max-w-7xl mx-auto px-4 py-16"),
			h.H2(h.Class("text-3xl font-bold text-center"), g.Text("Why Choose NexCard")),
			h.P(h.Class("mt-4 text-xl text-gray-600 text-center"), g.Text("The complete platform for creating and managing digital business cards")),
			h.Div(
				h.Class("mt-12 grid md:grid-cols-4 gap-8"),
				g.Map(features, func(f feature) g.Node {
					return h.Div(
						h.Class("text-center"),
						h.H3(h.Class("text-lg font-semibold mb-2"), g.Text(f.title)),
						h.P(h.Class("text-gray-600"), g.Text(f.text)),
					)
				}),
			),
		),
		h.Section(
			h.Class("bg-gray-100 py-16"),
			h.Div(
				h.Class("max-w-7xl mx-auto px-4"),
				h.H2(h.Class("text-3xl font-bold text-center"), g.Text("Simple, Transparent Pricing")),
				h.P(h.Class("mt-4 text-xl text-gray-600 text-center"), g.Text("Choose the plan that works for you or your team")),
				Tiers(pricing.BillingMonthly),
			),
		),
		h.Section(
			h.Class("py-16 text-center"),
			h.H2(h.Class("text-3xl font-bold mb-6"), g.Text("Ready to transform your networking?")),
			h.P(h.Class("text-xl text-gray-600 mb-8"), g.Text("Join thousands of professionals who have already made the switch to digital business cards.")),
			cta,
		),
	}
}

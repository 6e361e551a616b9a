package pages

import (
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/pricing"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func billingToggle(current pricing.Billing) g.Node {
	option := func(b pricing.Billing, label string) g.Node {
		cls := "px-4 py-2 rounded-md text-sm"
		if b == current {
			cls += " bg-indigo-600 text-white"
		} else {
			cls += " text-gray-700"
		}
		return h.A(h.Href("/pricing?billing="+string(b)), h.Class(cls), g.Text(label))
	}
	return h.Div(
		h.Class("mt-8 flex justify-center gap-2"),
		option(pricing.BillingMonthly, "Monthly"),
		option(pricing.BillingAnnually, "Annually"),
	)
}

func tierCard(t domain.PricingTier, b pricing.Billing) g.Node {
	period := "/month"
	if b == pricing.BillingAnnually {
		period = "/year"
	}
	savings, hasSavings := pricing.AnnualSavings(t)

	cls := "bg-white rounded-lg shadow p-6 flex flex-col"
	if t.Popular {
		cls += " ring-2 ring-indigo-600"
	}
	return h.Div(
		h.Class(cls),
		g.If(t.Popular, h.Span(h.Class("self-start mb-2 text-xs font-semibold text-indigo-600 uppercase"), g.Text("Most Popular"))),
		h.H3(h.Class("text-xl font-semibold"), g.Text(t.Name)),
		h.P(
			h.Class("mt-4"),
			h.Span(h.Class("text-4xl font-bold"), g.Textf("$%d", pricing.Price(t, b))),
			h.Span(h.Class("text-gray-500"), g.Text(period)),
		),
		g.If(b == pricing.BillingAnnually && hasSavings,
			h.P(h.Class("text-sm text-green-600"), g.Textf("Save %d%%", savings)),
		),
		h.P(h.Class("mt-4 text-gray-600"), g.Text(t.Description)),
		h.Ul(
			h.Class("mt-6 space-y-2 text-sm flex-1"),
			g.Map(t.Features, func(f string) g.Node {
				return h.Li(g.Text("✓ " + f))
			}),
		),
		h.A(h.Href("/auth/register"), h.Class("btn-primary mt-6 justify-center"), g.Text("Get Started")),
	)
}

// Tiers is the row of plan cards for the given billing period.
func Tiers(b pricing.Billing) g.Node {
	return h.Div(
		h.Class("mt-12 grid md:grid-cols-3 gap-8"),
		g.Map(pricing.Tiers(), func(t domain.PricingTier) g.Node {
			return tierCard(t, b)
		}),
	)
}

// Pricing is the standalone pricing page.
func Pricing(b pricing.Billing) g.Node {
	return h.Section(
		h.Class("max-w-7xl mx-auto px-4 py-16"),
		h.H1(h.Class("text-4xl font-bold text-center"), g.Text("Simple, Transparent Pricing")),
		h.P(h.Class("mt-4 text-xl text-gray-600 text-center"), g.Text("Choose the plan that works for you or your team")),
		billingToggle(b),
		Tiers(b),
	)
}

// Package pricing holds the fixed subscription tiers shown on the pricing page.
package pricing

import (
	"math"
	"slices"

	"github.com/nexcard/nexcard/internal/domain"
)

var tiers = []domain.PricingTier{
	{
		Name:        "Free",
		Description: "Perfect for individuals getting started with digital business cards.",
		Monthly:     0,
		Annually:    0,
		Features:    []string{"1 digital business card", "Basic templates", "QR code sharing", "Email support"},
	},
	{
		Name:        "Professional",
		Description: "For professionals who need more cards and features.",
		Monthly:     12,
		Annually:    120,
		Features: []string{
			"Up to 5 digital business cards", "All premium templates", "NFC capabilities",
			"Advanced analytics", "Priority email support", "Custom domain",
		},
		Popular: true,
	},
	{
		Name:        "Business",
		Description: "For teams that need to manage multiple members and cards.",
		Monthly:     29,
		Annually:    290,
		Features: []string{
			"Unlimited business cards", "Team management", "Brand customization",
			"Priority support", "API access", "Dedicated account manager", "SSO integration",
		},
	},
}

// Tiers returns the plans in display order.
func Tiers() []domain.PricingTier {
	out := slices.Clone(tiers)
	for i := range out {
		out[i].Features = slices.Clone(out[i].Features)
	}
	return out
}

// AnnualSavings is the whole percentage saved by paying yearly. Free tiers
// report no savings.
func AnnualSavings(t domain.PricingTier) (int, bool) {
	if t.Free() || t.Monthly <= 0 {
		return 0, false
	}
	full := float64(t.Monthly * 12)
	return int(math.Round((full - float64(t.Annually)) / full * 100)), true
}

// Billing selects which price a pricing page shows.
type Billing string

const (
	BillingMonthly  Billing = "monthly"
	BillingAnnually Billing = "annually"
)

// ParseBilling defaults to monthly for unknown values.
func ParseBilling(s string) Billing {
	if Billing(s) == BillingAnnually {
		return BillingAnnually
	}
	return BillingMonthly
}

// Price returns the amount charged for the billing period.
func Price(t domain.PricingTier, b Billing) int {
	if b == BillingAnnually {
		return t.Annually
	}
	return t.Monthly
}

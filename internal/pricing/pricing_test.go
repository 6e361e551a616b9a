package pricing_test

import (
	"testing"

	"github.com/nexcard/nexcard/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTiers(t *testing.T) {
	tiers := pricing.Tiers()
	require.Len(t, tiers, 3)

	assert.Equal(t, "Free", tiers[0].Name)
	assert.Equal(t, "Professional", tiers[1].Name)
	assert.True(t, tiers[1].Popular)
	assert.Equal(t, "Business", tiers[2].Name)
	assert.Contains(t, tiers[2].Features, "SSO integration")

	tiers[0].Features[0] = "changed"
	assert.Equal(t, "1 digital business card", pricing.Tiers()[0].Features[0])
}

func TestAnnualSavings(t *testing.T) {
	tiers := pricing.Tiers()

	_, ok := pricing.AnnualSavings(tiers[0])
	assert.False(t, ok)

	pct, ok := pricing.AnnualSavings(tiers[1])
	assert.True(t, ok)
	assert.Equal(t, 17, pct)

	pct, ok = pricing.AnnualSavings(tiers[2])
	assert.True(t, ok)
	assert.Equal(t, 17, pct)
}

func TestPrice(t *testing.T) {
	pro := pricing.Tiers()[1]

	assert.Equal(t, 12, pricing.Price(pro, pricing.ParseBilling("monthly")))
	assert.Equal(t, 120, pricing.Price(pro, pricing.ParseBilling("annually")))
	assert.Equal(t, 12, pricing.Price(pro, pricing.ParseBilling("weekly")))
}

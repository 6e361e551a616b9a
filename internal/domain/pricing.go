package domain

// PricingTier is one subscription plan shown on the pricing page. Prices are
// whole US dollars.
type PricingTier struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Monthly     int      `json:"monthly" yaml:"monthly"`
	Annually    int      `json:"annually" yaml:"annually"`
	Features    []string `json:"features" yaml:"features"`
	Popular     bool     `json:"popular,omitempty" yaml:"popular"`
}

// Free reports whether the tier costs nothing.
func (t PricingTier) Free() bool {
	return t.Monthly == 0 && t.Annually == 0
}

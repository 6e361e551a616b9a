// Package preview projects card data onto what the user sees. The projection
// is pure; the HTML and terminal renderers only lay out a VisualCard.
package preview

import (
	"strings"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/theme"
)

// Placeholders shown in the live preview while a field is empty.
const (
	PlaceholderName    = "Your Name"
	PlaceholderTitle   = "Your Title"
	PlaceholderCompany = "Your Company"
	PlaceholderEmail   = "email@example.com"
	PlaceholderPhone   = "+1 (555) 123-4567"
	PlaceholderWebsite = "website.com"
	PlaceholderAddress = "123 Business St, City"
)

// Line is one displayed value. Placeholder is set when Text was filled in
// because the real value was empty.
type Line struct {
	Text        string
	Placeholder bool
}

// VisualCard is the display model of a card.
type VisualCard struct {
	Theme   theme.Definition
	Name    Line
	Title   Line
	Company Line
	Email   Line
	Phone   Line
	Website Line
	Address Line

	ShowWebsite bool
	ShowAddress bool
	// FooterDark selects the dark footer used by the bold theme.
	FooterDark bool
}

// Initial returns the avatar letter for the card.
func (v VisualCard) Initial() string {
	if v.Name.Placeholder {
		return "?"
	}
	for _, r := range v.Name.Text {
		return strings.ToUpper(string(r))
	}
	return "?"
}

func line(value, placeholder string) Line {
	if value == "" {
		return Line{Text: placeholder, Placeholder: true}
	}
	return Line{Text: value}
}

// Render projects a draft's profile and theme for the live preview. Every
// field is shown, with a placeholder standing in for empty values. Unknown
// themes use the default styles.
func Render(p domain.ProfileFields, t domain.Theme) VisualCard {
	return VisualCard{
		Theme:       theme.Lookup(t),
		Name:        line(p.FullName, PlaceholderName),
		Title:       line(p.Title, PlaceholderTitle),
		Company:     line(p.Company, PlaceholderCompany),
		Email:       line(p.Email, PlaceholderEmail),
		Phone:       line(p.Phone, PlaceholderPhone),
		Website:     line(p.Website, PlaceholderWebsite),
		Address:     line(p.Address, PlaceholderAddress),
		ShowWebsite: true,
		ShowAddress: true,
		FooterDark:  t == domain.ThemeBold,
	}
}

// ReadView projects a saved card for its public page. Website and address
// only appear when the card has them.
func ReadView(c domain.Card) VisualCard {
	v := Render(c.Profile, c.Theme)
	v.ShowWebsite = c.Profile.Website != ""
	v.ShowAddress = c.Profile.Address != ""
	return v
}

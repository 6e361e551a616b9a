package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nexcard/nexcard/internal/preview"
)

const cardWidth = 42

// Card draws a card in the terminal using the theme's terminal colors.
// Placeholder values are dimmed.
func Card(v preview.VisualCard) string {
	colors := v.Theme.Terminal

	header := lipgloss.NewStyle().
		Background(lipgloss.Color(colors.HeaderBackground)).
		Foreground(lipgloss.Color(colors.HeaderForeground)).
		Padding(0, 1).
		Width(cardWidth)
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Accent))

	text := func(l preview.Line, style lipgloss.Style) string {
		if l.Placeholder {
			style = style.Faint(true)
		}
		return style.Render(l.Text)
	}

	top := header.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render("("+v.Initial()+") ")+text(v.Name, lipgloss.NewStyle().Bold(true)),
		text(v.Title, lipgloss.NewStyle()),
		text(v.Company, lipgloss.NewStyle()),
	))

	rows := []string{
		accent.Render("Email   ") + text(v.Email, lipgloss.NewStyle()),
		accent.Render("Phone   ") + text(v.Phone, lipgloss.NewStyle()),
	}
	if v.ShowWebsite {
		rows = append(rows, accent.Render("Web     ")+text(v.Website, lipgloss.NewStyle()))
	}
	if v.ShowAddress {
		rows = append(rows, accent.Render("Address ")+text(v.Address, lipgloss.NewStyle()))
	}
	body := lipgloss.NewStyle().Padding(1, 1, 0, 1).Width(cardWidth).Render(strings.Join(rows, "\n"))

	footer := lipgloss.NewStyle().Padding(0, 1).Width(cardWidth).Faint(true)
	if v.FooterDark {
		footer = footer.Faint(false).Background(lipgloss.Color("#1F2937")).Foreground(lipgloss.Color("#F9FAFB"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		Render(lipgloss.JoinVertical(lipgloss.Left, top, body, footer.Render(v.Theme.Name+" theme")))
}

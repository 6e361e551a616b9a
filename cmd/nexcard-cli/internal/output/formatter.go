// Package output prints CLI results as aligned tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/theme"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// CardDisplay is the JSON shape of a listed card.
type CardDisplay struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Theme     string `json:"theme"`
	FullName  string `json:"fullName"`
	Company   string `json:"company"`
	IsPublic  bool   `json:"isPublic"`
	UpdatedAt string `json:"updatedAt"`
}

// ThemeDisplay is the JSON shape of a theme.
type ThemeDisplay struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CheckFormat rejects unknown formats before any work is done.
func CheckFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, use table or json", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Cards prints a card list.
func Cards(w io.Writer, list []domain.Card, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	if format == FormatJSON {
		displays := make([]CardDisplay, len(list))
		for i, c := range list {
			displays[i] = CardDisplay{
				ID:        c.ID,
				Title:     c.Title,
				Theme:     string(c.Theme),
				FullName:  c.Profile.FullName,
				Company:   c.Profile.Company,
				IsPublic:  c.IsPublic,
				UpdatedAt: c.UpdatedAt.Format("2006-01-02"),
			}
		}
		return writeJSON(w, struct {
			Cards []CardDisplay `json:"cards"`
			Count int           `json:"count"`
		}{Cards: displays, Count: len(displays)})
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No cards found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTHEME\tNAME\tCOMPANY\tUPDATED")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			truncateString(c.ID, 12),
			truncateString(c.Title, 32),
			theme.DisplayName(c.Theme),
			truncateString(c.Profile.FullName, 24),
			truncateString(c.Profile.Company, 24),
			c.UpdatedAt.Format("Jan 2, 2006"))
	}
	return tw.Flush()
}

// Themes prints the theme table.
func Themes(w io.Writer, defs []theme.Definition, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	if format == FormatJSON {
		displays := make([]ThemeDisplay, len(defs))
		for i, d := range defs {
			displays[i] = ThemeDisplay{ID: string(d.ID), Name: d.Name, Description: d.Description}
		}
		return writeJSON(w, displays)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, d := range defs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Name, truncateString(d.Description, 50))
	}
	return tw.Flush()
}

// truncateString shortens s to maxLen runes, ending in "..." when cut.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(r[:maxLen-3]) + "..."
}

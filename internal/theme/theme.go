// Package theme holds the single table of card themes. The preview, the saved
// card view, the wizard review step and the gallery color strip all read from
// it, so a theme is only ever described in one place.
package theme

import (
	_ "embed"
	"fmt"

	"github.com/nexcard/nexcard/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

// Styles are the CSS class slots applied to the parts of a rendered card.
type Styles struct {
	Card    string `yaml:"card"`
	Header  string `yaml:"header"`
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Company string `yaml:"company"`
	Icon    string `yaml:"icon"`
}

// Terminal carries the colors used when a card is drawn in a terminal.
type Terminal struct {
	Border           string `yaml:"border"`
	HeaderBackground string `yaml:"header_background"`
	HeaderForeground string `yaml:"header_foreground"`
	Accent           string `yaml:"accent"`
}

// Definition is one entry of the theme table.
type Definition struct {
	ID          domain.Theme `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Strip       string       `yaml:"strip"`
	Styles      Styles       `yaml:"styles"`
	Terminal    Terminal     `yaml:"terminal"`
}

// Table is a parsed, read-only theme table.
type Table struct {
	fallback domain.Theme
	order    []domain.Theme
	byID     map[domain.Theme]Definition
}

type document struct {
	Default domain.Theme `yaml:"default"`
	Themes  []Definition `yaml:"themes"`
}

// titleCase capitalizes a theme id. Casers are stateful, so each call gets
// its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Parse decodes a theme table. The default entry must be one of the listed
// themes; unknown lookups resolve to it.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode theme table: %w", err)
	}
	if len(doc.Themes) == 0 {
		return nil, fmt.Errorf("theme table has no entries")
	}

	t := &Table{
		fallback: doc.Default,
		byID:     make(map[domain.Theme]Definition, len(doc.Themes)),
	}
	for _, def := range doc.Themes {
		if def.ID == "" {
			return nil, fmt.Errorf("theme entry without id")
		}
		if _, dup := t.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate theme %q", def.ID)
		}
		if def.Name == "" {
			def.Name = titleCase(string(def.ID))
		}
		t.byID[def.ID] = def
		t.order = append(t.order, def.ID)
	}
	if _, ok := t.byID[t.fallback]; !ok {
		return nil, fmt.Errorf("default theme %q is not defined", t.fallback)
	}
	return t, nil
}

var defaultTable = mustParse(themesYAML)

func mustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the embedded theme table.
func Default() *Table {
	return defaultTable
}

// Lookup returns the definition for id, or the default definition when id
// is not in the table.
func (t *Table) Lookup(id domain.Theme) Definition {
	if def, ok := t.byID[id]; ok {
		return def
	}
	return t.byID[t.fallback]
}

// Known reports whether id has its own entry.
func (t *Table) Known(id domain.Theme) bool {
	_, ok := t.byID[id]
	return ok
}

// All returns every definition in table order.
func (t *Table) All() []Definition {
	defs := make([]Definition, 0, len(t.order))
	for _, id := range t.order {
		defs = append(defs, t.byID[id])
	}
	return defs
}

// DisplayName returns the human name of id. Unknown ids are title-cased
// rather than mapped to the fallback, so a bad value stays visible.
func (t *Table) DisplayName(id domain.Theme) string {
	if def, ok := t.byID[id]; ok {
		return def.Name
	}
	return titleCase(string(id))
}

// Lookup resolves id against the embedded table.
func Lookup(id domain.Theme) Definition {
	return defaultTable.Lookup(id)
}

// DisplayName resolves the human name of id against the embedded table.
func DisplayName(id domain.Theme) string {
	return defaultTable.DisplayName(id)
}

// StripClass returns the gallery color strip class for id.
func StripClass(id domain.Theme) string {
	return defaultTable.Lookup(id).Strip
}

// Package cards implements the card gallery: searching, sorting, duplicating
// and deleting saved cards, plus the Service that ties those operations to a
// repository and the event bus.
package cards

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nexcard/nexcard/internal/domain"
)

// CopySuffix is appended to the title of a duplicated card.
const CopySuffix = " (Copy)"

// SortOrder names a gallery ordering.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortName   SortOrder = "name"
)

// ThemeAll disables theme filtering.
const ThemeAll = "all"

// Filter returns the cards whose title, holder name, job title or company
// contains query, ignoring case. Surrounding spaces in query are ignored, so
// a blank query returns every card.
func Filter(cards []domain.Card, query string) []domain.Card {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(cards)
	}
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c domain.Card, q string) bool {
	for _, field := range []string{c.Title, c.Profile.FullName, c.Profile.Title, c.Profile.Company} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterTheme keeps the cards using theme t. "all" or an empty value keeps
// every card.
func FilterTheme(cards []domain.Card, t string) []domain.Card {
	if t == "" || t == ThemeAll {
		return slices.Clone(cards)
	}
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if string(c.Theme) == t {
			out = append(out, c)
		}
	}
	return out
}

// Sort returns the cards in the requested order. Unknown orders sort newest
// first. The sort is stable.
func Sort(cards []domain.Card, order SortOrder) []domain.Card {
	out := slices.Clone(cards)
	switch order {
	case SortOldest:
		slices.SortStableFunc(out, func(a, b domain.Card) int { return a.CreatedAt.Compare(b.CreatedAt) })
	case SortName:
		slices.SortStableFunc(out, func(a, b domain.Card) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	default:
		slices.SortStableFunc(out, func(a, b domain.Card) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}
	return out
}

// Duplicate appends a copy of the card with the given id. The copy gets
// newID, the original title plus " (Copy)" and both timestamps set to now.
// An unknown id returns the cards unchanged along with ErrNotFound.
func Duplicate(cards []domain.Card, id string, now time.Time, newID string) ([]domain.Card, domain.Card, error) {
	idx := slices.IndexFunc(cards, func(c domain.Card) bool { return c.ID == id })
	if idx < 0 {
		return cards, domain.Card{}, fmt.Errorf("duplicate card %q: %w", id, domain.ErrNotFound)
	}
	cp := Copy(cards[idx], now, newID)
	out := make([]domain.Card, 0, len(cards)+1)
	out = append(out, cards...)
	out = append(out, cp)
	return out, cp, nil
}

// Copy returns a duplicate of c with a new id and fresh timestamps.
func Copy(c domain.Card, now time.Time, newID string) domain.Card {
	c.ID = newID
	c.Title += CopySuffix
	c.CreatedAt = now
	c.UpdatedAt = now
	return c
}

// Delete removes the card with the given id. Unknown ids are ignored.
func Delete(cards []domain.Card, id string) []domain.Card {
	return slices.DeleteFunc(slices.Clone(cards), func(c domain.Card) bool { return c.ID == id })
}

// Query is the gallery's search form.
type Query struct {
	Search string    `query:"q" form:"q"`
	Theme  string    `query:"theme" form:"theme" validate:"omitempty,oneof=all classic modern minimal bold elegant"`
	Sort   SortOrder `query:"sort" form:"sort" validate:"omitempty,oneof=newest oldest name"`
}

// Apply filters and orders cards according to q.
func (q Query) Apply(cards []domain.Card) []domain.Card {
	return Sort(FilterTheme(Filter(cards, q.Search), q.Theme), q.Sort)
}

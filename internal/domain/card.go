package domain

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Theme names one of the visual styles a card can be rendered with.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeModern  Theme = "modern"
	ThemeMinimal Theme = "minimal"
	ThemeBold    Theme = "bold"
	ThemeElegant Theme = "elegant"
)

// Themes lists the recognized themes in display order.
var Themes = []Theme{ThemeClassic, ThemeModern, ThemeMinimal, ThemeBold, ThemeElegant}

// Valid reports whether t is one of the recognized themes.
func (t Theme) Valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}

// ProfileFields is the contact block embedded in a business card.
// Presence is the only rule: there is no format check on email or phone.
type ProfileFields struct {
	FullName string `json:"fullName" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Website  string `json:"website,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Draft is an unsaved card as authored in the creation wizard.
// The "notblank" tag is registered by the wizard's validator.
type Draft struct {
	Title   string        `json:"title" validate:"notblank"`
	Theme   Theme         `json:"theme" validate:"required"`
	Profile ProfileFields `json:"profile"`
}

// Card is a saved digital business card.
type Card struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	TeamID    string        `json:"teamId,omitempty"`
	Title     string        `json:"title"`
	Theme     Theme         `json:"theme"`
	IsPublic  bool          `json:"isPublic"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Profile   ProfileFields `json:"profileData"`
}

// Draft returns the editable part of the card.
func (c Card) Draft() Draft {
	return Draft{Title: c.Title, Theme: c.Theme, Profile: c.Profile}
}

// Slug returns a URL and filename friendly name for the card, preferring the
// holder's name over the card title.
func (c Card) Slug() string {
	name := strings.TrimSpace(c.Profile.FullName)
	if name == "" {
		name = c.Title
	}
	s := slug.Make(name)
	if s == "" {
		return "card"
	}
	return s
}

// Initial returns the first letter of the holder's name, used as an avatar.
func (c Card) Initial() string {
	for _, r := range c.Profile.FullName {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// CardRepository is the storage contract for saved cards.
type CardRepository interface {
	// List returns the cards owned by userID in creation order.
	List(ctx context.Context, userID string) ([]Card, error)
	// Get returns ErrNotFound when no card has the given id.
	Get(ctx context.Context, id string) (*Card, error)
	// Create stores a card whose ID is already set.
	Create(ctx context.Context, card *Card) (*Card, error)
	Update(ctx context.Context, card *Card) (*Card, error)
	Delete(ctx context.Context, id string) error
}

// CardSaver persists a finished draft and returns the id of the stored card.
type CardSaver interface {
	Save(ctx context.Context, draft Draft) (string, error)
}

// CardFetcher loads a saved card. It returns ErrNotFound for unknown ids.
type CardFetcher interface {
	Fetch(ctx context.Context, id string) (*Card, error)
}

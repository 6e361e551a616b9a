// Package settings keeps per-user preferences and profiles for the settings
// and profile pages.
package settings

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/nexcard/nexcard/internal/domain"
)

// Appearance is the dashboard colour scheme.
type Appearance string

const (
	AppearanceLight  Appearance = "light"
	AppearanceDark   Appearance = "dark"
	AppearanceSystem Appearance = "system"
)

// Appearances lists the selectable schemes in display order.
var Appearances = []Appearance{AppearanceLight, AppearanceDark, AppearanceSystem}

// Preferences is everything the settings form edits.
type Preferences struct {
	DisplayName   string       `form:"display_name" validate:"required,max=80"`
	DefaultTheme  domain.Theme `form:"default_theme" validate:"required,oneof=classic modern minimal bold elegant"`
	Appearance    Appearance   `form:"appearance" validate:"required,oneof=light dark system"`
	NotifyViews   bool         `form:"notify_views"`
	NotifyInvites bool         `form:"notify_invites"`
	NotifyProduct bool         `form:"notify_product"`
	NotifyPush    bool         `form:"notify_push"`
}

// Defaults are the preferences of a user who never saved the form.
func Defaults(user domain.User) Preferences {
	return Preferences{
		DisplayName:   user.Name,
		DefaultTheme:  domain.ThemeClassic,
		Appearance:    AppearanceLight,
		NotifyViews:   true,
		NotifyInvites: true,
	}
}

var validate = validator.New()

// Store holds preferences and profiles in memory, keyed by user id.
type Store struct {
	mu       sync.RWMutex
	prefs    map[string]Preferences
	profiles map[string]Profile
}

func NewStore() *Store {
	return &Store{prefs: make(map[string]Preferences), profiles: make(map[string]Profile)}
}

// Get returns the saved preferences or the defaults for user.
func (s *Store) Get(user domain.User) Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.prefs[user.ID]; ok {
		return p
	}
	return Defaults(user)
}

// Update validates and stores p for userID.
func (s *Store) Update(userID string, p Preferences) (Preferences, error) {
	p.DisplayName = strings.TrimSpace(p.DisplayName)
	if err := validate.Struct(p); err != nil {
		return Preferences{}, err
	}

	s.mu.Lock()
	s.prefs[userID] = p
	s.mu.Unlock()
	return p, nil
}

// DefaultTheme is the theme new cards of user start with.
func (s *Store) DefaultTheme(user domain.User) domain.Theme {
	return s.Get(user).DefaultTheme
}

package settings

import (
	"strings"

	"github.com/nexcard/nexcard/internal/domain"
)

// Profile is the personal information on the profile page.
type Profile struct {
	Name    string `form:"name" validate:"required,max=80"`
	Phone   string `form:"phone" validate:"max=40"`
	Company string `form:"company" validate:"max=120"`
	Title   string `form:"title" validate:"max=120"`
	Website string `form:"website" validate:"max=200"`
	Address string `form:"address" validate:"max=200"`
	Bio     string `form:"bio" validate:"max=1000"`
}

// DefaultProfile is shown until the user saves the profile form. The
// company details match the demo cards.
func DefaultProfile(user domain.User) Profile {
	return Profile{
		Name:    user.Name,
		Phone:   "+1 (555) 123-4567",
		Company: "Acme Inc.",
		Title:   "Marketing Director",
		Website: "www.example.com",
		Address: "123 Business Ave, San Francisco, CA",
		Bio:     "Experienced marketing professional with a passion for digital strategy and brand development.",
	}
}

// Initial is the avatar letter.
func (p Profile) Initial() string {
	for _, r := range p.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Profile returns the saved profile or the defaults for user.
func (s *Store) Profile(user domain.User) Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[user.ID]; ok {
		return p
	}
	return DefaultProfile(user)
}

// UpdateProfile validates and stores p for userID.
func (s *Store) UpdateProfile(userID string, p Profile) (Profile, error) {
	for _, f := range []*string{&p.Name, &p.Phone, &p.Company, &p.Title, &p.Website, &p.Address, &p.Bio} {
		*f = strings.TrimSpace(*f)
	}
	if err := validate.Struct(p); err != nil {
		return Profile{}, err
	}

	s.mu.Lock()
	s.profiles[userID] = p
	s.mu.Unlock()
	return p, nil
}

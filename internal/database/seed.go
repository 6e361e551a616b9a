package database

import (
	"time"

	"github.com/nexcard/nexcard/internal/domain"
)

// SeedUserID owns the demo cards. Mock sign-in always yields this user.
const SeedUserID = "user1"

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedCards returns the demo cards every fresh store starts with.
func SeedCards() []domain.Card {
	profile := func(title string) domain.ProfileFields {
		return domain.ProfileFields{
			FullName: "Alex Johnson",
			Title:    title,
			Company:  "Acme Inc.",
			Email:    "alex@example.com",
			Phone:    "+1 (555) 123-4567",
		}
	}

	marketing := profile("Marketing Director")
	marketing.Website = "www.example.com"
	marketing.Address = "123 Business Ave, San Francisco, CA"

	return []domain.Card{
		{
			ID:        "1",
			UserID:    SeedUserID,
			Title:     "Marketing Director Card",
			Theme:     domain.ThemeModern,
			IsPublic:  true,
			CreatedAt: day(2025, time.January, 15),
			UpdatedAt: day(2025, time.March, 20),
			Profile:   marketing,
		},
		{
			ID:        "2",
			UserID:    SeedUserID,
			Title:     "Conference Networking Card",
			Theme:     domain.ThemeElegant,
			IsPublic:  true,
			CreatedAt: day(2025, time.February, 10),
			UpdatedAt: day(2025, time.March, 15),
			Profile:   profile("Speaker & Consultant"),
		},
		{
			ID:        "3",
			UserID:    SeedUserID,
			Title:     "Client Meeting Card",
			Theme:     domain.ThemeClassic,
			IsPublic:  true,
			CreatedAt: day(2025, time.March, 1),
			UpdatedAt: day(2025, time.March, 10),
			Profile:   profile("Account Manager"),
		},
	}
}

// Package help holds the help centre content.
package help

import "strings"

// FAQ is one question on the help page.
type FAQ struct {
	Question string
	Answer   string
}

// Guide is a tutorial card on the help page.
type Guide struct {
	Title       string
	Description string
}

var faqs = []FAQ{
	{
		Question: "How do I create my first digital business card?",
		Answer:   `To create your first digital business card, log in to your account and click on the "Create New Card" button on your dashboard. Follow the step-by-step wizard to customize your card with your personal information, choose a template, and add your branding elements. Once you're satisfied with your design, click "Save" to publish your card.`,
	},
	{
		Question: "How do I share my digital business card?",
		Answer:   "There are multiple ways to share your digital business card. You can share it by direct link, which can be sent via email, text, or social media, or download it as a contact file that any phone can import.",
	},
	{
		Question: "Can I create multiple business cards?",
		Answer:   "Yes, depending on your subscription plan. The Free plan allows you to create 1 card, the Professional plan allows up to 5 cards, and the Business plan offers unlimited cards. This is useful if you want different cards for different purposes or roles.",
	},
	{
		Question: "How do I update my card information?",
		Answer:   `To update your card information, go to the "My Cards" section, find the card you want to edit, and click the "Edit" button. Make your changes in the card editor, and click "Save" when you're done. Your card will be instantly updated, and anyone who accesses your card will see the new information.`,
	},
	{
		Question: "How do I track who has viewed my card?",
		Answer:   "The Analytics section of your dashboard shows how often each card was viewed, saved and duplicated, along with a feed of recent activity. The page updates live while it is open.",
	},
	{
		Question: "How do I add team members to my account?",
		Answer:   `Go to the "Team" section and click "Invite Team Member." Enter their email address and select their role (admin or member). They'll appear as pending until they join your team.`,
	},
	{
		Question: "Can I customize the design of my card?",
		Answer:   "Yes, you can choose from five themes: Classic, Modern, Minimal, Bold and Elegant. The wizard shows a live preview as you type, and you can set the theme new cards start with in your settings.",
	},
}

var guides = []Guide{
	{Title: "Getting Started Guide", Description: "Learn the basics of creating and sharing your digital business card"},
	{Title: "Video Tutorials", Description: "Watch step-by-step video guides for all features"},
	{Title: "Team Management", Description: "Learn how to set up and manage your team accounts"},
	{Title: "Advanced Features", Description: "Discover advanced customization and integration options"},
}

// Guides returns the tutorial cards.
func Guides() []Guide {
	return append([]Guide(nil), guides...)
}

// Search returns the questions whose text contains query, ignoring case.
// An empty query returns every question.
func Search(query string) []FAQ {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]FAQ, 0, len(faqs))
	for _, f := range faqs {
		if q == "" || strings.Contains(strings.ToLower(f.Question), q) || strings.Contains(strings.ToLower(f.Answer), q) {
			out = append(out, f)
		}
	}
	return out
}

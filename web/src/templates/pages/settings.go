package pages

import (
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/settings"
	"github.com/nexcard/nexcard/internal/theme"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SettingsData is what the settings page shows.
type SettingsData struct {
	User    domain.User
	Prefs   settings.Preferences
	Problem string
}

func checkbox(name, label, hint string, on bool) g.Node {
	return h.Label(
		h.Class("flex items-start gap-3"),
		h.Input(h.Type("checkbox"), h.Name(name), h.Value("true"), g.If(on, h.Checked()), h.Class("mt-1")),
		h.Span(
			h.Span(h.Class("block text-sm font-medium"), g.Text(label)),
			h.Span(h.Class("block text-xs text-gray-500"), g.Text(hint)),
		),
	)
}

func settingsSection(title string, children ...g.Node) g.Node {
	return h.Section(
		h.Class("bg-white rounded-lg shadow p-6 space-y-4"),
		h.H2(h.Class("text-lg font-semibold"), g.Text(title)),
		g.Group(children),
	)
}

// Settings is the account settings page.
func Settings(d SettingsData) g.Node {
	p := d.Prefs
	return g.Group{
		h.H1(h.Class("text-2xl font-bold mb-6"), g.Text("Settings")),
		g.If(d.Problem != "", h.Div(h.Role("alert"), h.Class("flash flash-error mb-4"), g.Text(d.Problem))),
		h.Form(
			h.Method("post"), h.Action("/app/settings"),
			h.Class("space-y-6 max-w-3xl"),
			settingsSection("Account Settings",
				h.Div(
					h.Label(h.For("display_name"), h.Class("block text-sm font-medium text-gray-700"), g.Text("Display Name")),
					h.Input(h.ID("display_name"), h.Name("display_name"), h.Type("text"), h.Value(p.DisplayName), h.Class("form-input")),
				),
				h.Div(
					h.P(h.Class("block text-sm font-medium text-gray-700"), g.Text("Email Address")),
					h.P(h.Class("text-sm text-gray-600"), g.Text(d.User.Email)),
				),
			),
			settingsSection("Notification Preferences",
				checkbox("notify_views", "Email Notifications", "Receive notifications when someone views your card", p.NotifyViews),
				checkbox("notify_invites", "Team Invitations", "Receive notifications for team invitations", p.NotifyInvites),
				checkbox("notify_product", "Product Updates", "Receive updates about new features and promotions", p.NotifyProduct),
				checkbox("notify_push", "Push Notifications", "Receive push notifications on your devices", p.NotifyPush),
			),
			settingsSection("Appearance Settings",
				h.Div(
					h.Label(h.For("appearance"), h.Class("block text-sm font-medium text-gray-700"), g.Text("Theme")),
					h.Select(
						h.ID("appearance"), h.Name("appearance"), h.Class("form-input"),
						g.Map(settings.Appearances, func(a settings.Appearance) g.Node {
							return selectOption(string(a), cases.Title(language.English).String(string(a)), string(p.Appearance))
						}),
					),
				),
				h.Div(
					h.Label(h.For("default_theme"), h.Class("block text-sm font-medium text-gray-700"), g.Text("Default Card Theme")),
					h.Select(
						h.ID("default_theme"), h.Name("default_theme"), h.Class("form-input"),
						g.Map(theme.Default().All(), func(def theme.Definition) g.Node {
							return selectOption(string(def.ID), def.Name, string(p.DefaultTheme))
						}),
					),
				),
			),
			h.Button(h.Type("submit"), h.Class("btn-primary"), g.Text("Save Settings")),
		),
	}
}

package pages

import (
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/settings"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ProfileData is what the profile page shows.
type ProfileData struct {
	User    domain.User
	Profile settings.Profile
	Editing bool
	Problem string
}

func profileDetail(label, value string) g.Node {
	return h.Div(
		h.P(h.Class("text-sm font-medium text-gray-500"), g.Text(label)),
		h.P(h.Class("text-gray-900"), g.Text(value)),
	)
}

func profileInput(name, label, value string) g.Node {
	return h.Div(
		h.Label(h.For(name), h.Class("block text-sm font-medium text-gray-700"), g.Text(label)),
		h.Input(h.ID(name), h.Name(name), h.Type("text"), h.Value(value), h.Class("form-input")),
	)
}

func profileView(d ProfileData) g.Node {
	p := d.Profile
	return g.Group{
		h.Div(
			h.Class("flex items-center gap-6"),
			h.Div(h.Class("h-24 w-24 rounded-full bg-indigo-100 flex items-center justify-center text-indigo-700 font-semibold text-3xl"), g.Text(p.Initial())),
			h.Div(
				h.H2(h.Class("text-2xl font-bold"), g.Text(p.Name)),
				g.If(p.Title != "" || p.Company != "", h.P(h.Class("text-gray-600"), g.Textf("%s at %s", p.Title, p.Company))),
			),
		),
		h.Div(
			h.Class("grid grid-cols-1 md:grid-cols-2 gap-6 pt-6 border-t border-gray-200"),
			profileDetail("Email", d.User.Email),
			profileDetail("Company", p.Company),
			profileDetail("Phone", p.Phone),
			profileDetail("Job Title", p.Title),
			profileDetail("Website", p.Website),
			profileDetail("Address", p.Address),
		),
		h.Div(h.Class("pt-6 border-t border-gray-200"), profileDetail("Bio", p.Bio)),
	}
}

func profileForm(d ProfileData) g.Node {
	p := d.Profile
	return h.Form(
		h.Method("post"), h.Action("/app/profile"),
		h.Class("space-y-4"),
		h.Div(
			h.Class("grid grid-cols-1 md:grid-cols-2 gap-4"),
			profileInput("name", "Full Name", p.Name),
			h.Div(
				h.P(h.Class("block text-sm font-medium text-gray-700"), g.Text("Email")),
				h.P(h.Class("text-sm text-gray-600"), g.Text(d.User.Email)),
			),
			profileInput("phone", "Phone", p.Phone),
			profileInput("company", "Company", p.Company),
			profileInput("title", "Job Title", p.Title),
			profileInput("website", "Website", p.Website),
		),
		profileInput("address", "Address", p.Address),
		h.Div(
			h.Label(h.For("bio"), h.Class("block text-sm font-medium text-gray-700"), g.Text("Bio")),
			h.Textarea(h.ID("bio"), h.Name("bio"), h.Rows("4"), h.Class("form-input"), g.Text(p.Bio)),
		),
		h.Div(
			h.Class("flex justify-end"),
			h.Button(h.Type("submit"), h.Class("btn-primary"), g.Text("Save Changes")),
		),
	)
}

// Profile is the personal profile page, read-only unless Editing.
func Profile(d ProfileData) g.Node {
	action := h.A(h.Href("/app/profile?edit=1"), h.Class("btn-primary"), g.Text("Edit Profile"))
	if d.Editing {
		action = h.A(h.Href("/app/profile"), h.Class("btn-secondary"), g.Text("Cancel"))
	}
	body := profileView(d)
	if d.Editing {
		body = profileForm(d)
	}

	return g.Group{
		h.Div(
			h.Class("flex items-center justify-between mb-6"),
			h.Div(
				h.H1(h.Class("text-2xl font-bold"), g.Text("My Profile")),
				h.P(h.Class("mt-1 text-sm text-gray-600"), g.Text("Manage your personal information")),
			),
			action,
		),
		g.If(d.Problem != "", h.Div(h.Role("alert"), h.Class("flash flash-error mb-4"), g.Text(d.Problem))),
		h.Section(
			h.Class("bg-white rounded-lg shadow p-6 space-y-6"),
			h.H2(h.Class("text-lg font-semibold"), g.Text("Personal Information")),
			body,
		),
	}
}

package pages

import (
	"github.com/nexcard/nexcard/internal/domain"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// TeamData is what the team page shows.
type TeamData struct {
	Members []domain.TeamMember
	// CanManage is true for team admins.
	CanManage   bool
	InviteEmail string
	Problem     string
}

func roleSelect(m domain.TeamMember) g.Node {
	opt := func(r domain.MemberRole, label string) g.Node {
		return h.Option(h.Value(string(r)), g.If(m.Role == r, h.Selected()), g.Text(label))
	}
	return h.Form(
		h.Method("post"), h.Action("/app/team/"+m.ID+"/role"),
		h.Select(
			h.Name("role"), h.Class("form-input w-auto text-sm"),
			g.Attr("onchange", "this.form.submit()"),
			opt(domain.MemberRoleAdmin, "Admin"),
			opt(domain.MemberRoleMember, "Member"),
		),
	)
}

func memberRow(m domain.TeamMember, manage bool) g.Node {
	status := "Active"
	if m.InviteStatus == domain.InvitePending {
		status = "Pending"
	}
	return h.Tr(
		h.Td(h.Class("py-3"),
			h.P(h.Class("font-medium"), g.Text(m.DisplayName())),
			h.P(h.Class("text-xs text-gray-500"), g.Text(m.Email)),
		),
		h.Td(g.If(manage, roleSelect(m)), g.If(!manage, g.Text(string(m.Role)))),
		h.Td(h.Class("text-sm"), g.Text(status)),
		h.Td(g.If(manage, h.Form(
			h.Method("post"), h.Action("/app/team/"+m.ID+"/remove"),
			hx.Confirm("Remove "+m.DisplayName()+" from the team?"),
			h.Button(h.Type("submit"), h.Class("btn-danger"), g.Text("Remove")),
		))),
	)
}

// Team is the team management page.
func Team(d TeamData) g.Node {
	return g.Group{
		h.H1(h.Class("text-2xl font-bold mb-6"), g.Text("Team")),
		g.If(d.CanManage, h.Form(
			h.Method("post"), h.Action("/app/team/invite"),
			h.Class("bg-white rounded-lg shadow p-5 mb-6 flex flex-wrap items-end gap-4"),
			h.Div(
				h.Class("flex-1"),
				h.Label(h.For("email"), h.Class("block text-sm font-medium text-gray-700"), g.Text("Email Address")),
				h.Input(h.ID("email"), h.Name("email"), h.Type("email"), h.Value(d.InviteEmail), h.Class("form-input"), h.Required()),
			),
			h.Div(
				h.Label(h.For("role"), h.Class("block text-sm font-medium text-gray-700"), g.Text("Role")),
				h.Select(
					h.ID("role"), h.Name("role"), h.Class("form-input"),
					h.Option(h.Value(string(domain.MemberRoleMember)), g.Text("Member")),
					h.Option(h.Value(string(domain.MemberRoleAdmin)), g.Text("Admin")),
				),
			),
			h.Button(h.Type("submit"), h.Class("btn-primary"), g.Text("Invite Team Member")),
			g.If(d.Problem != "", h.P(h.Role("alert"), h.Class("w-full text-sm text-red-600"), g.Text(d.Problem))),
		)),
		h.Div(
			h.Class("bg-white rounded-lg shadow p-5"),
			h.Table(
				h.Class("w-full text-left"),
				h.THead(h.Tr(
					h.Th(g.Text("Member")), h.Th(g.Text("Role")), h.Th(g.Text("Status")), h.Th(),
				)),
				h.TBody(
					h.Class("divide-y divide-gray-100"),
					g.Map(d.Members, func(m domain.TeamMember) g.Node {
						return memberRow(m, d.CanManage)
					}),
				),
			),
		),
	}
}

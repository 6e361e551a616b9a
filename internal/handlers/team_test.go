package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeam_List(t *testing.T) {
	cl := newTestApp(t).client(t)
	cl.signIn()

	rec := cl.get("/app/team")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Alex Johnson")
	assert.Contains(t, body, "Sarah Williams")
	assert.Contains(t, body, "michael@example.com")
	assert.Contains(t, body, "Pending")
	assert.Contains(t, body, "Invite Team Member")
}

func TestTeam_Invite(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		wantCode int
		want     string
	}{
		{name: "valid", form: url.Values{"email": {"new@example.com"}, "role": {"member"}}, wantCode: http.StatusSeeOther},
		{name: "empty email", form: url.Values{"email": {""}, "role": {"member"}}, wantCode: http.StatusUnprocessableEntity, want: "Please enter a valid email address."},
		{name: "duplicate", form: url.Values{"email": {"SARAH@example.com"}, "role": {"member"}}, wantCode: http.StatusUnprocessableEntity, want: "already on your team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			cl := app.client(t)
			cl.signIn()

			rec := cl.post("/app/team/invite", tt.form)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.want != "" {
				assert.Contains(t, rec.Body.String(), tt.want)
				assert.Len(t, app.roster.List(team.DefaultTeamID), 3)
				return
			}
			assert.Len(t, app.roster.List(team.DefaultTeamID), 4)
			assert.Contains(t, cl.follow(rec).Body.String(), "Invitation sent to new@example.com.")
			sent := app.outbox.messages()
			require.Len(t, sent, 1)
			assert.Equal(t, "new@example.com", sent[0].To)
			assert.Contains(t, sent[0].Body, "/auth/register")
		})
	}
}

func TestTeam_RoleAndRemove(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)
	cl.signIn()

	cl.post("/app/team/2/role", url.Values{"role": {"admin"}})
	role, _ := app.roster.RoleOf(team.DefaultTeamID, "user2")
	assert.Equal(t, domain.MemberRoleAdmin, role)

	rec := cl.follow(cl.post("/app/team/3/remove", nil))
	assert.Contains(t, rec.Body.String(), "Team member removed.")
	assert.NotContains(t, rec.Body.String(), "michael@example.com")
}

func TestTeam_MembersCannotManage(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)
	cl.signIn()

	_, err := app.roster.ChangeRole(team.DefaultTeamID, "2", domain.MemberRoleAdmin)
	require.NoError(t, err)
	_, err = app.roster.ChangeRole(team.DefaultTeamID, "1", domain.MemberRoleMember)
	require.NoError(t, err)

	rec := cl.get("/app/team")
	assert.NotContains(t, rec.Body.String(), "Invite Team Member")

	rec = cl.post("/app/team/invite", url.Values{"email": {"x@example.com"}, "role": {"member"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTeam_InviteEmailFailureIsReported(t *testing.T) {
	app := newTestApp(t)
	app.outbox.fail = true
	cl := app.client(t)
	cl.signIn()

	rec := cl.follow(cl.post("/app/team/invite", url.Values{"email": {"new@example.com"}, "role": {"member"}}))
	assert.Contains(t, rec.Body.String(), "the email to new@example.com could not be sent")
	assert.Len(t, app.roster.List(team.DefaultTeamID), 4)
}

package team_test

import (
	"testing"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster_Seed(t *testing.T) {
	r := team.NewRoster(team.SeedMembers())

	members := r.List(team.DefaultTeamID)
	require.Len(t, members, 3)
	assert.Equal(t, "Alex Johnson", members[0].DisplayName())
	assert.Equal(t, domain.MemberRoleAdmin, members[0].Role)
	assert.Equal(t, "michael@example.com", members[2].DisplayName())
	assert.Equal(t, domain.InvitePending, members[2].InviteStatus)
	assert.Equal(t, 2, r.Size(team.DefaultTeamID))
	assert.Empty(t, r.List("other-team"))
}

func TestRoster_Invite(t *testing.T) {
	tests := []struct {
		name    string
		inv     team.Invitation
		wantErr error
	}{
		{name: "valid member", inv: team.Invitation{Email: " jo@example.com ", Role: domain.MemberRoleMember}},
		{name: "valid admin", inv: team.Invitation{Email: "boss@example.com", Role: domain.MemberRoleAdmin}},
		{name: "empty email", inv: team.Invitation{Email: "", Role: domain.MemberRoleMember}, wantErr: domain.ErrInvalidInput},
		{name: "malformed email", inv: team.Invitation{Email: "nope", Role: domain.MemberRoleMember}, wantErr: domain.ErrInvalidInput},
		{name: "unknown role", inv: team.Invitation{Email: "x@example.com", Role: "owner"}, wantErr: domain.ErrInvalidInput},
		{name: "already on team", inv: team.Invitation{Email: "SARAH@example.com", Role: domain.MemberRoleMember}, wantErr: domain.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := team.NewRoster(team.SeedMembers())

			m, err := r.Invite(team.DefaultTeamID, tt.inv)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, r.List(team.DefaultTeamID), 3)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, m.ID)
			assert.Equal(t, domain.InvitePending, m.InviteStatus)
			assert.Equal(t, tt.inv.Role, m.Role)
			assert.NotContains(t, m.Email, " ")
			assert.Len(t, r.List(team.DefaultTeamID), 4)
		})
	}
}

func TestRoster_Remove(t *testing.T) {
	r := team.NewRoster(team.SeedMembers())

	require.NoError(t, r.Remove(team.DefaultTeamID, "3"))
	assert.Len(t, r.List(team.DefaultTeamID), 2)

	assert.ErrorIs(t, r.Remove(team.DefaultTeamID, "3"), domain.ErrNotFound)
	assert.ErrorIs(t, r.Remove(team.DefaultTeamID, "1"), team.ErrLastAdmin)
}

func TestRoster_ChangeRole(t *testing.T) {
	r := team.NewRoster(team.SeedMembers())

	m, err := r.ChangeRole(team.DefaultTeamID, "2", domain.MemberRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.MemberRoleAdmin, m.Role)

	_, err = r.ChangeRole(team.DefaultTeamID, "1", domain.MemberRoleMember)
	require.NoError(t, err, "another admin remains")

	_, err = r.ChangeRole(team.DefaultTeamID, "2", domain.MemberRoleMember)
	assert.ErrorIs(t, err, team.ErrLastAdmin)

	_, err = r.ChangeRole(team.DefaultTeamID, "2", "owner")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = r.ChangeRole(team.DefaultTeamID, "99", domain.MemberRoleMember)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoster_RoleOf(t *testing.T) {
	r := team.NewRoster(team.SeedMembers())

	role, ok := r.RoleOf(team.DefaultTeamID, "user1")
	assert.True(t, ok)
	assert.Equal(t, domain.MemberRoleAdmin, role)

	role, ok = r.RoleOf(team.DefaultTeamID, "user2")
	assert.True(t, ok)
	assert.Equal(t, domain.MemberRoleMember, role)

	_, ok = r.RoleOf(team.DefaultTeamID, "")
	assert.False(t, ok)
	_, ok = r.RoleOf("other-team", "user1")
	assert.False(t, ok)
}

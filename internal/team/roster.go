// Package team keeps the in-memory team rosters behind the team page.
package team

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nexcard/nexcard/internal/domain"
)

// DefaultTeamID is the team every mock user belongs to.
const DefaultTeamID = "team1"

// ErrLastAdmin is returned when a change would leave a team without an
// accepted admin.
var ErrLastAdmin = errors.New("team must keep at least one admin")

// Invitation is the invite form.
type Invitation struct {
	Email string            `form:"email" validate:"required,email"`
	Role  domain.MemberRole `form:"role" validate:"required,oneof=admin member"`
}

var validate = validator.New()

// SeedMembers returns the demo roster.
func SeedMembers() []domain.TeamMember {
	return []domain.TeamMember{
		{ID: "1", UserID: "user1", TeamID: DefaultTeamID, Role: domain.MemberRoleAdmin, InviteStatus: domain.InviteAccepted, Email: "alex@example.com", Name: "Alex Johnson"},
		{ID: "2", UserID: "user2", TeamID: DefaultTeamID, Role: domain.MemberRoleMember, InviteStatus: domain.InviteAccepted, Email: "sarah@example.com", Name: "Sarah Williams"},
		{ID: "3", TeamID: DefaultTeamID, Role: domain.MemberRoleMember, InviteStatus: domain.InvitePending, Email: "michael@example.com"},
	}
}

// Roster holds the members of every team.
type Roster struct {
	mu      sync.RWMutex
	members []domain.TeamMember
	newID   func() string
}

// NewRoster creates a roster holding a copy of seed.
func NewRoster(seed []domain.TeamMember) *Roster {
	return &Roster{members: slices.Clone(seed), newID: uuid.NewString}
}

// List returns a team's members in invitation order.
func (r *Roster) List(teamID string) []domain.TeamMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TeamMember, 0, len(r.members))
	for _, m := range r.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out
}

// Invite adds a pending member. The email must be valid and not already on
// the team.
func (r *Roster) Invite(teamID string, inv Invitation) (domain.TeamMember, error) {
	inv.Email = strings.TrimSpace(inv.Email)
	if err := validate.Struct(inv); err != nil {
		return domain.TeamMember{}, fmt.Errorf("invite: %w: %w", domain.ErrInvalidInput, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		if m.TeamID == teamID && strings.EqualFold(m.Email, inv.Email) {
			return domain.TeamMember{}, fmt.Errorf("invite %s: %w", inv.Email, domain.ErrAlreadyExists)
		}
	}
	m := domain.TeamMember{
		ID:           r.newID(),
		TeamID:       teamID,
		Role:         inv.Role,
		InviteStatus: domain.InvitePending,
		Email:        inv.Email,
	}
	r.members = append(r.members, m)
	return m, nil
}

func (r *Roster) index(teamID, id string) int {
	return slices.IndexFunc(r.members, func(m domain.TeamMember) bool {
		return m.TeamID == teamID && m.ID == id
	})
}

// adminsLeft counts accepted admins of teamID, skipping member skip.
func (r *Roster) adminsLeft(teamID, skip string) int {
	n := 0
	for _, m := range r.members {
		if m.TeamID == teamID && m.ID != skip && m.Role == domain.MemberRoleAdmin && m.InviteStatus == domain.InviteAccepted {
			n++
		}
	}
	return n
}

// Remove deletes a member or cancels a pending invitation.
func (r *Roster) Remove(teamID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(teamID, id)
	if i < 0 {
		return fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	m := r.members[i]
	if m.Role == domain.MemberRoleAdmin && m.InviteStatus == domain.InviteAccepted && r.adminsLeft(teamID, id) == 0 {
		return ErrLastAdmin
	}
	r.members = slices.Delete(r.members, i, i+1)
	return nil
}

// ChangeRole sets a member's role.
func (r *Roster) ChangeRole(teamID, id string, role domain.MemberRole) (domain.TeamMember, error) {
	if !role.Valid() {
		return domain.TeamMember{}, fmt.Errorf("role %q: %w", role, domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(teamID, id)
	if i < 0 {
		return domain.TeamMember{}, fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	m := &r.members[i]
	if m.Role == domain.MemberRoleAdmin && role != domain.MemberRoleAdmin &&
		m.InviteStatus == domain.InviteAccepted && r.adminsLeft(teamID, id) == 0 {
		return domain.TeamMember{}, ErrLastAdmin
	}
	m.Role = role
	return *m, nil
}

// Size counts the accepted members of a team.
func (r *Roster) Size(teamID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, m := range r.members {
		if m.TeamID == teamID && m.InviteStatus == domain.InviteAccepted {
			n++
		}
	}
	return n
}

// RoleOf returns the role userID holds on the team.
func (r *Roster) RoleOf(teamID, userID string) (domain.MemberRole, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.TeamID == teamID && m.UserID != "" && m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

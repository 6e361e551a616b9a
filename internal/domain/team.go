package domain

// MemberRole is a member's permission level within a team.
type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// Valid reports whether r is a known member role.
func (r MemberRole) Valid() bool {
	return r == MemberRoleAdmin || r == MemberRoleMember
}

// InviteStatus tracks whether an invited member has joined.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
)

// TeamMember is one row of a team roster.
type TeamMember struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId,omitempty"`
	TeamID       string       `json:"teamId"`
	Role         MemberRole   `json:"role"`
	InviteStatus InviteStatus `json:"inviteStatus"`
	Email        string       `json:"email"`
	Name         string       `json:"name,omitempty"`
}

// DisplayName falls back to the email address for members who have not
// accepted an invite yet.
func (m TeamMember) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.Email
}

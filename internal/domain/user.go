package domain

import "time"

// Role describes how a user relates to teams.
type Role string

const (
	RoleIndividual Role = "individual"
	RoleTeamAdmin  Role = "team_admin"
	RoleTeamMember Role = "team_member"
)

// User is the signed-in account. Authentication is mocked, so a user only
// ever exists inside the visitor's session.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	TeamID    string    `json:"teamId,omitempty"`
}

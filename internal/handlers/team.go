package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/email"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/nexcard/nexcard/internal/team"
	"github.com/nexcard/nexcard/internal/view"
	"github.com/nexcard/nexcard/web/src/templates/layouts"
	"github.com/nexcard/nexcard/web/src/templates/pages"
)

// TeamHandler serves the team roster.
type TeamHandler struct {
	roster  *team.Roster
	mailer  email.Sender
	baseURL string
}

// NewTeamHandler creates a new TeamHandler. Invitations link to the
// registration page under baseURL.
func NewTeamHandler(roster *team.Roster, mailer email.Sender, baseURL string) *TeamHandler {
	return &TeamHandler{roster: roster, mailer: mailer, baseURL: baseURL}
}

func teamOf(user *domain.User) string {
	if user.TeamID != "" {
		return user.TeamID
	}
	return team.DefaultTeamID
}

func (h *TeamHandler) canManage(user *domain.User) bool {
	role, ok := h.roster.RoleOf(teamOf(user), user.ID)
	return ok && role == domain.MemberRoleAdmin
}

func teamProblem(err error) string {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return "Please enter a valid email address."
	case errors.Is(err, domain.ErrAlreadyExists):
		return "That person is already on your team."
	case errors.Is(err, team.ErrLastAdmin):
		return "Your team needs at least one admin."
	case errors.Is(err, domain.ErrNotFound):
		return "That team member no longer exists."
	default:
		return "Something went wrong. Please try again."
	}
}

// TeamGet renders the roster (GET /app/team).
func (h *TeamHandler) TeamGet(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return renderApp(c, http.StatusOK, "Team", layouts.SectionTeam, pages.Team(pages.TeamData{
		Members:   h.roster.List(teamOf(user)),
		CanManage: h.canManage(user),
	}))
}

// managed runs fn for team admins only.
func (h *TeamHandler) managed(c echo.Context, fn func(user *domain.User) error) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if !h.canManage(user) {
		return echo.NewHTTPError(http.StatusForbidden, "only team admins can manage members")
	}
	return fn(user)
}

// InvitePost adds a pending member (POST /app/team/invite).
func (h *TeamHandler) InvitePost(c echo.Context) error {
	return h.managed(c, func(user *domain.User) error {
		var inv team.Invitation
		if err := c.Bind(&inv); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
		}
		member, err := h.roster.Invite(teamOf(user), inv)
		if err != nil {
			return renderApp(c, http.StatusUnprocessableEntity, "Team", layouts.SectionTeam, pages.Team(pages.TeamData{
				Members:     h.roster.List(teamOf(user)),
				CanManage:   true,
				InviteEmail: inv.Email,
				Problem:     teamProblem(err),
			}))
		}
		msg := email.Invitation(member.Email, user.Name, h.baseURL+"/auth/register")
		if err := h.mailer.Send(c.Request().Context(), msg); err != nil {
			middleware.FromContext(c.Request().Context()).Error("Failed to send invitation", "to", member.Email, "error", err)
			view.SetFlashError(c, "Invitation saved, but the email to "+member.Email+" could not be sent.")
			return c.Redirect(http.StatusSeeOther, "/app/team")
		}
		view.SetFlashSuccess(c, "Invitation sent to "+member.Email+".")
		return c.Redirect(http.StatusSeeOther, "/app/team")
	})
}

// RolePost changes a member's role (POST /app/team/:id/role).
func (h *TeamHandler) RolePost(c echo.Context) error {
	return h.managed(c, func(user *domain.User) error {
		role := domain.MemberRole(c.FormValue("role"))
		if _, err := h.roster.ChangeRole(teamOf(user), c.Param("id"), role); err != nil {
			view.SetFlashError(c, teamProblem(err))
		} else {
			view.SetFlashSuccess(c, "Role updated.")
		}
		return c.Redirect(http.StatusSeeOther, "/app/team")
	})
}

// RemovePost removes a member (POST /app/team/:id/remove).
func (h *TeamHandler) RemovePost(c echo.Context) error {
	return h.managed(c, func(user *domain.User) error {
		if err := h.roster.Remove(teamOf(user), c.Param("id")); err != nil {
			view.SetFlashError(c, teamProblem(err))
		} else {
			view.SetFlashSuccess(c, "Team member removed.")
		}
		return c.Redirect(http.StatusSeeOther, "/app/team")
	})
}

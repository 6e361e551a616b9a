package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/domain"
)

// UserContextKey is where RequireUser stores the signed-in *domain.User.
const UserContextKey = "user"

// UserSource resolves the signed-in user of a request.
type UserSource interface {
	CurrentUser(c echo.Context) (*domain.User, bool)
}

// RequireUser protects routes that need a signed-in user. Anonymous visitors
// are redirected to the login page; htmx requests get an HX-Redirect instead
// so the whole page navigates.
func RequireUser(users UserSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := users.CurrentUser(c)
			if !ok {
				if c.Request().Header.Get("HX-Request") == "true" {
					c.Response().Header().Set("HX-Redirect", "/auth/login")
					return c.NoContent(http.StatusUnauthorized)
				}
				return c.Redirect(http.StatusSeeOther, "/auth/login")
			}

			c.Set(UserContextKey, user)
			withUser(c, user.ID)
			return next(c)
		}
	}
}

// OptionalUser places the signed-in user in the context when there is one,
// so public pages can adapt their navigation.
func OptionalUser(users UserSource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, ok := users.CurrentUser(c); ok {
				c.Set(UserContextKey, user)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user placed in the context by RequireUser or
// OptionalUser.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(UserContextKey).(*domain.User)
	return user, ok && user != nil
}

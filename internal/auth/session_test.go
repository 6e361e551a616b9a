package auth_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/auth"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// setupAuthTest serves three routes: one that signs in, one that reports the
// current user and one that signs out.
func setupAuthTest(t *testing.T) (*echo.Echo, *auth.Manager) {
	t.Helper()
	e := echo.New()
	mgr := auth.NewManager(auth.NewCookieStore(testSessionSecret))
	e.Use(mgr.Middleware())

	e.POST("/login", func(c echo.Context) error {
		user := mgr.Login(auth.LoginForm{Email: c.FormValue("email")})
		if err := mgr.SignIn(c, user); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/me", func(c echo.Context) error {
		user, ok := mgr.CurrentUser(c)
		if !ok {
			return c.String(http.StatusUnauthorized, "anonymous")
		}
		return c.JSON(http.StatusOK, user)
	})
	e.POST("/logout", func(c echo.Context) error {
		if err := mgr.SignOut(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	return e, mgr
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", auth.SessionName)
	return nil
}

func TestManager_SignInRoundTrip(t *testing.T) {
	e, _ := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	form := url.Values{"email": {"jane.doe@example.com"}}
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	cookie := sessionCookie(t, rec)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"jane.doe"`)
	assert.Contains(t, rec.Body.String(), `"id":"user1"`)

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Negative(t, sessionCookie(t, rec).MaxAge)
}

func TestManager_MockUsers(t *testing.T) {
	mgr := auth.NewManager(auth.NewCookieStore(testSessionSecret))

	u := mgr.Login(auth.LoginForm{Email: " alex@example.com "})
	assert.Equal(t, "alex", u.Name)
	assert.Equal(t, "alex@example.com", u.Email)
	assert.Equal(t, domain.RoleIndividual, u.Role)
	assert.Equal(t, auth.MockUserID, u.ID)
	assert.Equal(t, auth.MockTeamID, u.TeamID)
	assert.False(t, u.CreatedAt.IsZero())

	r := mgr.Register(auth.RegisterForm{Name: "Jane Doe", Email: "jane@example.com"})
	assert.Equal(t, "Jane Doe", r.Name)
}

func TestForms(t *testing.T) {
	tests := []struct {
		name    string
		form    any
		problem string
	}{
		{name: "valid login", form: auth.LoginForm{Email: "a@b.co", Password: "x"}},
		{name: "login bad email", form: auth.LoginForm{Email: "ab", Password: "x"}, problem: "Please enter a valid email address."},
		{name: "login no password", form: auth.LoginForm{Email: "a@b.co"}, problem: "Please enter your password."},
		{name: "valid register", form: auth.RegisterForm{Name: "A", Email: "a@b.co", Password: "password1", PasswordConfirm: "password1"}},
		{name: "short password", form: auth.RegisterForm{Name: "A", Email: "a@b.co", Password: "short", PasswordConfirm: "short"}, problem: "Password must be at least 8 characters long."},
		{name: "mismatch", form: auth.RegisterForm{Name: "A", Email: "a@b.co", Password: "password1", PasswordConfirm: "password2"}, problem: "Passwords do not match."},
		{name: "no name", form: auth.RegisterForm{Email: "a@b.co", Password: "password1", PasswordConfirm: "password1"}, problem: "Please enter your name."},
		{name: "reset without token", form: auth.ResetPasswordForm{Password: "password1", PasswordConfirm: "password1"}, problem: "This reset link is invalid or has expired."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Validate(tt.form)
			if tt.problem == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.problem, auth.Problem(err))
		})
	}
}

// Package auth provides the mocked sign-in flow. No credentials are checked:
// any well-formed email signs in, and the resulting user lives only in the
// visitor's cookie session.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/domain"
)

const (
	// SessionName is the cookie session holding the signed-in user.
	SessionName = "nexcard-session"
	userKey     = "user"
)

// MockUserID is the id every mock sign-in receives. The demo cards belong
// to this user.
const MockUserID = "user1"

// MockTeamID is the team every mock user is placed in.
const MockTeamID = "team1"

// ErrNoSession is returned when the session middleware did not run.
var ErrNoSession = errors.New("auth: session unavailable")

// Manager reads and writes the signed-in user. It owns the session store and
// is created once at the application root.
type Manager struct {
	store sessions.Store
	now   func() time.Time
}

// NewManager creates a Manager backed by store.
func NewManager(store sessions.Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// NewCookieStore creates the cookie store used for every session.
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Middleware makes the session store available to handlers.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return session.Middleware(m.store)
}

// CurrentUser returns the signed-in user, if any.
func (m *Manager) CurrentUser(c echo.Context) (*domain.User, bool) {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return nil, false
	}
	raw, ok := sess.Values[userKey].(string)
	if !ok || raw == "" {
		return nil, false
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, false
	}
	return &u, true
}

// SignIn stores user in the session.
func (m *Manager) SignIn(c echo.Context, user domain.User) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	sess.Values[userKey] = string(data)
	return sess.Save(c.Request(), c.Response())
}

// SignOut forgets the signed-in user.
func (m *Manager) SignOut(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSession, err)
	}
	delete(sess.Values, userKey)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// Login builds the mock user for a login form. The display name is the
// email's local part.
func (m *Manager) Login(form LoginForm) domain.User {
	email := strings.TrimSpace(form.Email)
	name, _, _ := strings.Cut(email, "@")
	return m.mockUser(email, name)
}

// Register builds the mock user for a registration form.
func (m *Manager) Register(form RegisterForm) domain.User {
	return m.mockUser(strings.TrimSpace(form.Email), strings.TrimSpace(form.Name))
}

func (m *Manager) mockUser(email, name string) domain.User {
	return domain.User{
		ID:        MockUserID,
		Email:     email,
		Name:      name,
		Role:      domain.RoleIndividual,
		CreatedAt: m.now().UTC(),
		TeamID:    MockTeamID,
	}
}

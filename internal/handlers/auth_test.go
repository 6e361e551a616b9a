package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_LoginFlow(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)

	rec := cl.get("/app")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))

	cl.signIn()
	rec = cl.get("/app")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back, alex!")
	assert.Contains(t, rec.Body.String(), "Marketing Director Card")

	rec = cl.get("/auth/logout")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	rec = cl.get("/app")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAuth_FormProblems(t *testing.T) {
	tests := []struct {
		name string
		path string
		form url.Values
		want string
	}{
		{
			name: "login needs a valid email",
			path: "/auth/login",
			form: url.Values{"email": {"not-an-email"}, "password": {"x"}},
			want: "Please enter a valid email address.",
		},
		{
			name: "register passwords must match",
			path: "/auth/register",
			form: url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "password": {"password1"}, "password_confirm": {"password2"}},
			want: "Passwords do not match.",
		},
		{
			name: "register password length",
			path: "/auth/register",
			form: url.Values{"name": {"Jane"}, "email": {"jane@example.com"}, "password": {"short"}, "password_confirm": {"short"}},
			want: "Password must be at least 8 characters long.",
		},
		{
			name: "reset needs a token",
			path: "/auth/reset-password",
			form: url.Values{"password": {"password1"}, "password_confirm": {"password1"}},
			want: "This reset link is invalid or has expired.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := newTestApp(t).client(t)
			rec := cl.post(tt.path, tt.form)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestAuth_RegisterSignsIn(t *testing.T) {
	cl := newTestApp(t).client(t)

	rec := cl.post("/auth/register", url.Values{
		"name": {"Jane Doe"}, "email": {"jane@example.com"},
		"password": {"password1"}, "password_confirm": {"password1"},
	})
	rec = cl.follow(rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account created successfully!")
	assert.Contains(t, rec.Body.String(), "Welcome back, Jane Doe")
}

func TestAuth_PasswordReset(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)

	rec := cl.post("/auth/forgot-password", url.Values{"email": {"jane@example.com"}})
	rec = cl.follow(rec)
	assert.Contains(t, rec.Body.String(), "a password reset link has been sent")

	sent := app.outbox.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "jane@example.com", sent[0].To)
	assert.Contains(t, sent[0].Body, "http://localhost:8080/auth/reset-password?token=")

	rec = cl.get("/auth/reset-password")
	assert.Equal(t, "/auth/forgot-password", rec.Header().Get(echo.HeaderLocation))

	rec = cl.get("/auth/reset-password?token=abc")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="abc"`)

	rec = cl.post("/auth/reset-password", url.Values{"token": {"abc"}, "password": {"password1"}, "password_confirm": {"password1"}})
	assert.Equal(t, "/auth/login", rec.Header().Get(echo.HeaderLocation))
}

func TestAuth_HTMXRequestsGetRedirectHeader(t *testing.T) {
	cl := newTestApp(t).client(t)

	rec := cl.post("/app/wizard/preview", url.Values{"title": {"x"}}, "HX-Request", "true")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("HX-Redirect"))
}

package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProfile(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)
	cl.signIn()

	rec := cl.get("/app/profile")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Personal Information")
	assert.Contains(t, body, "alex@example.com")
	assert.Contains(t, body, "Acme Inc.")
	assert.Contains(t, body, `href="/app/profile?edit=1"`)
	assert.NotContains(t, body, "Save Changes")

	rec = cl.get("/app/profile?edit=1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="bio"`)
	assert.Contains(t, rec.Body.String(), "Save Changes")

	rec = cl.post("/app/profile", url.Values{
		"name":    {"  Alex Johnson  "},
		"company": {"Globex"},
		"title":   {"Head of Sales"},
		"bio":     {"Sells things."},
	})
	rec = cl.follow(rec)
	body = rec.Body.String()
	assert.Contains(t, body, "Profile updated.")
	assert.Contains(t, body, "Head of Sales at Globex")
	assert.Contains(t, body, "Sells things.")

	p := app.prefs.Profile(domain.User{ID: "user1"})
	assert.Equal(t, "Alex Johnson", p.Name)
	assert.Empty(t, p.Phone)
}

func TestProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{name: "missing name", form: url.Values{"name": {"   "}}},
		{name: "bio too long", form: url.Values{"name": {"Alex"}, "bio": {strings.Repeat("b", 1001)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := newTestApp(t).client(t)
			cl.signIn()

			rec := cl.post("/app/profile", tt.form)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), "Please check your profile")
			assert.Contains(t, rec.Body.String(), "Save Changes")
		})
	}
}

func TestProfile_RequiresSignIn(t *testing.T) {
	cl := newTestApp(t).client(t)

	rec := cl.get("/app/profile")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicPages(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "/", want: []string{"Digital Business Cards for Modern Professionals", "Sign In", "Professional"}},
		{path: "/pricing", want: []string{"Simple, Transparent Pricing", "/month"}},
		{path: "/pricing?billing=annually", want: []string{"/year", "Save 17%"}},
		{path: "/help", want: []string{"Help Center", "How do I create my first digital business card?"}},
		{path: "/help?q=team", want: []string{"How do I add team members to my account?"}},
	}

	app := newTestApp(t)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := app.client(t).get(tt.path)
			assert.Equal(t, http.StatusOK, rec.Code)
			for _, w := range tt.want {
				assert.Contains(t, rec.Body.String(), w)
			}
		})
	}
}

func TestHelp_HTMXSearchReturnsList(t *testing.T) {
	rec := newTestApp(t).client(t).get("/help?q=nothing-matches", "HX-Request", "true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="faq-list"`)
	assert.Contains(t, rec.Body.String(), "No results found")
	assert.NotContains(t, rec.Body.String(), "<html")
}

func TestHome_SignedInShowsDashboardLink(t *testing.T) {
	cl := newTestApp(t).client(t)
	cl.signIn()

	rec := cl.get("/")
	assert.Contains(t, rec.Body.String(), `href="/app"`)
	assert.NotContains(t, rec.Body.String(), "Sign In")
}

package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nexcard/nexcard/internal/analytics"
	"github.com/nexcard/nexcard/internal/auth"
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/nexcard/nexcard/internal/database"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/email"
	"github.com/nexcard/nexcard/internal/handlers"
	"github.com/nexcard/nexcard/internal/middleware"
	"github.com/nexcard/nexcard/internal/pubsub"
	"github.com/nexcard/nexcard/internal/rendering"
	"github.com/nexcard/nexcard/internal/settings"
	"github.com/nexcard/nexcard/internal/team"
	"github.com/nexcard/nexcard/internal/wizard"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// testApp wires the handlers the way the server does, over in-memory stores.
type testApp struct {
	e       *echo.Echo
	repo    domain.CardRepository
	cards   *cards.Service
	tracker *analytics.Tracker
	roster  *team.Roster
	prefs   *settings.Store
	outbox  *outbox
}

// outbox keeps every email the handlers send.
type outbox struct {
	mu   sync.Mutex
	sent []email.Message
	fail bool
}

func (o *outbox) Send(_ context.Context, msg email.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fail {
		return errors.New("mail server unavailable")
	}
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) messages() []email.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]email.Message(nil), o.sent...)
}

// failingSaveRepo lets tests force save errors.
type failingSaveRepo struct {
	domain.CardRepository
	fail bool
}

func (r *failingSaveRepo) Create(ctx context.Context, c *domain.Card) (*domain.Card, error) {
	if r.fail {
		return nil, database.ErrNotConnected
	}
	return r.CardRepository.Create(ctx, c)
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	bus := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bus.Close() })

	tracker := analytics.NewTracker()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, tracker.Subscribe(ctx, bus))

	repo := &failingSaveRepo{CardRepository: database.NewMemoryCardRepository(database.SeedCards(), 0)}
	svc := cards.NewService(repo, bus)
	roster := team.NewRoster(team.SeedMembers())
	prefs := settings.NewStore()
	sessions := auth.NewManager(auth.NewCookieStore(testSessionSecret))

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(sessions.Middleware())

	mail := &outbox{}
	authH := handlers.NewAuthHandler(sessions, mail, "http://localhost:8080")
	cardsH := handlers.NewCardsHandler(svc, "http://localhost:8080")
	wizardH := handlers.NewWizardHandler(svc, prefs, wizard.NewStore(0))

	public := e.Group("", middleware.OptionalUser(sessions))
	public.GET("/", handlers.HomeGet)
	public.GET("/pricing", handlers.PricingGet)
	public.GET("/help", handlers.HelpGet)
	public.GET("/cards/:id", cardsH.ViewGet)
	public.GET("/cards/:id/vcard", cardsH.VCardGet)
	public.GET("/auth/login", authH.LoginGet)
	public.POST("/auth/login", authH.LoginPost)
	public.GET("/auth/register", authH.RegisterGet)
	public.POST("/auth/register", authH.RegisterPost)
	public.GET("/auth/logout", authH.Logout)
	public.GET("/auth/forgot-password", authH.ForgotPasswordGet)
	public.POST("/auth/forgot-password", authH.ForgotPasswordPost)
	public.GET("/auth/reset-password", authH.ResetPasswordGet)
	public.POST("/auth/reset-password", authH.ResetPasswordPost)

	app := e.Group("/app", middleware.RequireUser(sessions))
	app.GET("", handlers.NewDashboardHandler(svc, tracker, roster).DashboardGet)
	app.GET("/cards", cardsH.GalleryGet)
	app.POST("/cards/:id/delete", cardsH.DeletePost)
	app.POST("/cards/:id/duplicate", cardsH.DuplicatePost)
	app.GET("/cards/new", wizardH.NewGet)
	app.GET("/cards/:id/edit", wizardH.EditGet)
	app.POST("/wizard/field", wizardH.FieldPost)
	app.POST("/wizard/preview", wizardH.PreviewPost)
	app.POST("/wizard/next", wizardH.NextPost)
	app.POST("/wizard/back", wizardH.BackPost)
	app.POST("/wizard/save", wizardH.SavePost)
	analyticsH := handlers.NewAnalyticsHandler(tracker, rendering.NewUniversalRenderer())
	app.GET("/analytics", analyticsH.AnalyticsGet)
	app.GET("/analytics/ws", analyticsH.LiveGet)
	teamH := handlers.NewTeamHandler(roster, mail, "http://localhost:8080")
	app.GET("/team", teamH.TeamGet)
	app.POST("/team/invite", teamH.InvitePost)
	app.POST("/team/:id/role", teamH.RolePost)
	app.POST("/team/:id/remove", teamH.RemovePost)
	settingsH := handlers.NewSettingsHandler(prefs)
	app.GET("/settings", settingsH.SettingsGet)
	app.POST("/settings", settingsH.SettingsPost)
	profileH := handlers.NewProfileHandler(prefs)
	app.GET("/profile", profileH.ProfileGet)
	app.POST("/profile", profileH.ProfilePost)

	return &testApp{e: e, repo: repo, cards: svc, tracker: tracker, roster: roster, prefs: prefs, outbox: mail}
}

// client is a tiny browser: it replays the cookies the app sets.
type client struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) client(t *testing.T) *client {
	return &client{t: t, app: a, cookies: make(map[string]*http.Cookie)}
}

func (cl *client) do(req *http.Request) *httptest.ResponseRecorder {
	cl.t.Helper()
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	cl.app.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(cl.cookies, ck.Name)
			continue
		}
		cl.cookies[ck.Name] = ck
	}
	return rec
}

func (cl *client) get(path string, headers ...string) *httptest.ResponseRecorder {
	cl.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return cl.do(req)
}

func (cl *client) post(path string, form url.Values, headers ...string) *httptest.ResponseRecorder {
	cl.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return cl.do(req)
}

// signIn logs the client in as the mock user.
func (cl *client) signIn() {
	cl.t.Helper()
	rec := cl.post("/auth/login", url.Values{"email": {"alex@example.com"}, "password": {"secret"}})
	require.Equal(cl.t, http.StatusSeeOther, rec.Code)
	require.Equal(cl.t, "/app", rec.Header().Get(echo.HeaderLocation))
}

// follow GETs the redirect target of rec.
func (cl *client) follow(rec *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	cl.t.Helper()
	require.Equal(cl.t, http.StatusSeeOther, rec.Code)
	return cl.get(rec.Header().Get(echo.HeaderLocation))
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 10*time.Millisecond)
}

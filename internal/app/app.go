// Package app is the application root: it builds the dependency graph that
// cmd/server runs.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nexcard/nexcard/internal/analytics"
	"github.com/nexcard/nexcard/internal/auth"
	"github.com/nexcard/nexcard/internal/cards"
	"github.com/nexcard/nexcard/internal/config"
	"github.com/nexcard/nexcard/internal/database"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/email"
	"github.com/nexcard/nexcard/internal/handlers"
	"github.com/nexcard/nexcard/internal/logging"
	"github.com/nexcard/nexcard/internal/pubsub"
	"github.com/nexcard/nexcard/internal/rendering"
	"github.com/nexcard/nexcard/internal/server"
	"github.com/nexcard/nexcard/internal/settings"
	"github.com/nexcard/nexcard/internal/team"
	"github.com/nexcard/nexcard/internal/wizard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/surrealdb/surrealdb.go"
)

// New creates the injector for cfg. Services are built lazily on first
// invocation; Shutdown on the returned scope closes them in reverse order.
func New(cfg config.Provider) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	Register(i)
	return i
}

// Register adds every provider to i. A config.Provider must already be
// registered. Tests may override single services afterwards with
// do.Override.
func Register(i do.Injector) {
	do.Provide(i, provideLogger)
	do.Provide(i, provideSessions)
	do.Provide(i, provideMailer)
	do.Provide(i, provideBus)
	do.Provide(i, provideSurreal)
	do.Provide(i, provideRepository)
	do.Provide(i, provideTracker)
	do.Provide(i, provideCards)
	do.Provide(i, provideRoster)
	do.Provide(i, provideSettings)
	do.Provide(i, provideDrafts)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideMetrics)
	do.Provide(i, provideServer)
}

func provideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return logging.New(cfg.GetLogFormat(), cfg.GetLogLevel()), nil
}

func provideSessions(i do.Injector) (*auth.Manager, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return auth.NewManager(auth.NewCookieStore(cfg.GetSessionSecret())), nil
}

func provideMailer(i do.Injector) (email.Sender, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return email.NewLogSender(cfg.GetEmailSender()), nil
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	logger := do.MustInvoke[*slog.Logger](i)
	return pubsub.NewWatermillBridge(pubsub.WithLogger(logger)), nil
}

// surrealConn closes the database connection on injector shutdown.
type surrealConn struct {
	db *surrealdb.DB
}

func (s *surrealConn) Shutdown(ctx context.Context) error {
	return s.db.Close(ctx)
}

func provideSurreal(i do.Injector) (*surrealConn, error) {
	cfg := do.MustInvoke[config.Provider](i)
	db, err := database.NewSurrealDB(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return &surrealConn{db: db}, nil
}

// provideRepository picks the card store named by CARD_STORE and seeds it
// with the demo cards.
func provideRepository(i do.Injector) (domain.CardRepository, error) {
	cfg := do.MustInvoke[config.Provider](i)
	ctx := context.Background()

	switch cfg.GetCardStore() {
	case config.StoreFile:
		repo, err := database.NewFileCardRepository(afero.NewOsFs(), cfg.GetCardStoreDir())
		if err != nil {
			return nil, err
		}
		seeded, err := repo.SeedIfEmpty(ctx, database.SeedCards())
		if err != nil {
			return nil, fmt.Errorf("seed card store: %w", err)
		}
		slog.Info("Using file card store", "dir", cfg.GetCardStoreDir(), "seeded", seeded)
		return repo, nil
	case config.StoreSurreal:
		conn, err := do.Invoke[*surrealConn](i)
		if err != nil {
			return nil, err
		}
		repo := database.NewSurrealCardRepository(conn.db, cfg.GetDBQueryTimeout(), cfg.GetDBExecuteTimeout())
		if err := repo.Seed(ctx, database.SeedCards()); err != nil {
			return nil, fmt.Errorf("seed card store: %w", err)
		}
		slog.Info("Using SurrealDB card store")
		return repo, nil
	default:
		slog.Info("Using in-memory card store", "latency", cfg.GetSimulatedLatency())
		return database.NewMemoryCardRepository(database.SeedCards(), cfg.GetSimulatedLatency()), nil
	}
}

// provideTracker starts the analytics subscriptions. They end when the bus
// is closed.
func provideTracker(i do.Injector) (*analytics.Tracker, error) {
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	tracker := analytics.NewTracker()
	if err := tracker.Subscribe(context.Background(), bus); err != nil {
		return nil, err
	}
	return tracker, nil
}

func provideCards(i do.Injector) (*cards.Service, error) {
	repo, err := do.Invoke[domain.CardRepository](i)
	if err != nil {
		return nil, err
	}
	// The tracker must be listening before the first card event.
	if _, err := do.Invoke[*analytics.Tracker](i); err != nil {
		return nil, err
	}
	return cards.NewService(repo, do.MustInvoke[*pubsub.WatermillBridge](i)), nil
}

func provideRoster(do.Injector) (*team.Roster, error) {
	return team.NewRoster(team.SeedMembers()), nil
}

func provideSettings(do.Injector) (*settings.Store, error) {
	return settings.NewStore(), nil
}

func provideDrafts(do.Injector) (*wizard.Store, error) {
	return wizard.NewStore(wizard.DefaultDraftTTL), nil
}

func provideRenderer(do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideMetrics(do.Injector) (*prometheus.Registry, error) {
	// The card counters register with the default registry, so /metrics
	// serves that one.
	return prometheus.DefaultRegisterer.(*prometheus.Registry), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[config.Provider](i)
	svc, err := do.Invoke[*cards.Service](i)
	if err != nil {
		return nil, err
	}
	sessions := do.MustInvoke[*auth.Manager](i)
	tracker := do.MustInvoke[*analytics.Tracker](i)
	roster := do.MustInvoke[*team.Roster](i)
	prefs := do.MustInvoke[*settings.Store](i)
	renderer := do.MustInvoke[*rendering.UniversalRenderer](i)
	mailer := do.MustInvoke[email.Sender](i)

	s := server.New(cfg, server.Options{
		Sessions: sessions,
		Renderer: renderer,
		Metrics:  do.MustInvoke[*prometheus.Registry](i),
		Handlers: server.Handlers{
			Auth:      handlers.NewAuthHandler(sessions, mailer, cfg.GetAppBaseURL()),
			Cards:     handlers.NewCardsHandler(svc, cfg.GetAppBaseURL()),
			Wizard:    handlers.NewWizardHandler(svc, prefs, do.MustInvoke[*wizard.Store](i)),
			Dashboard: handlers.NewDashboardHandler(svc, tracker, roster),
			Analytics: handlers.NewAnalyticsHandler(tracker, renderer),
			Team:      handlers.NewTeamHandler(roster, mailer, cfg.GetAppBaseURL()),
			Settings:  handlers.NewSettingsHandler(prefs),
			Profile:   handlers.NewProfileHandler(prefs),
		},
	})
	s.RegisterRoutes()
	return s, nil
}

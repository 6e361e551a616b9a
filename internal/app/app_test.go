package app_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nexcard/nexcard/internal/app"
	"github.com/nexcard/nexcard/internal/config"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(store string) *config.Config {
	return &config.Config{
		AppAddr:       ":0",
		AppBaseURL:    "http://localhost:8080",
		SessionSecret: "a-very-secret-key-for-testing-!",
		LogFormat:     "text",
		LogLevel:      "error",
		CardStore:     store,
	}
}

func newInjector(t *testing.T, cfg *config.Config) *do.RootScope {
	t.Helper()
	i := app.New(cfg)
	do.Override(i, func(do.Injector) (*prometheus.Registry, error) {
		return prometheus.NewRegistry(), nil
	})
	t.Cleanup(func() { i.Shutdown() })
	return i
}

func TestNew_MemoryStore(t *testing.T) {
	i := newInjector(t, testConfig(config.StoreMemory))

	repo, err := do.Invoke[domain.CardRepository](i)
	require.NoError(t, err)
	list, err := repo.List(t.Context(), "user1")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	s, err := do.Invoke[*server.Server](i)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/2", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Conference Networking Card")
}

func TestNew_FileStoreIsSeeded(t *testing.T) {
	cfg := testConfig(config.StoreFile)
	cfg.CardStoreDir = filepath.Join(t.TempDir(), "cards")
	i := newInjector(t, cfg)

	repo, err := do.Invoke[domain.CardRepository](i)
	require.NoError(t, err)
	card, err := repo.Get(t.Context(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Marketing Director Card", card.Title)

	entries, err := os.ReadDir(cfg.CardStoreDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestNew_SurrealStoreFailsWithoutServer(t *testing.T) {
	if testing.Short() {
		t.Skip("dials the network")
	}
	cfg := testConfig(config.StoreSurreal)
	cfg.DBURL = "ws://127.0.0.1:1/rpc"
	cfg.DBNs, cfg.DBDb = "nexcard", "nexcard"
	i := newInjector(t, cfg)

	_, err := do.Invoke[*server.Server](i)
	assert.Error(t, err)
}

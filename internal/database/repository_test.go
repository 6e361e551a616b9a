package database_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/nexcard/nexcard/internal/config"
	"github.com/nexcard/nexcard/internal/database"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"
)

type repoFactory func(t *testing.T, seed []domain.Card) domain.CardRepository

func memoryFactory(t *testing.T, seed []domain.Card) domain.CardRepository {
	return database.NewMemoryCardRepository(seed, 0)
}

func fileFactory(t *testing.T, seed []domain.Card) domain.CardRepository {
	repo, err := database.NewFileCardRepository(afero.NewMemMapFs(), "cards")
	require.NoError(t, err)
	_, err = repo.SeedIfEmpty(context.Background(), seed)
	require.NoError(t, err)
	return repo
}

func surrealFactory(t *testing.T, seed []domain.Card) domain.CardRepository {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if os.Getenv("SURREAL_URL") == "" {
		t.Skip("SURREAL_URL not set")
	}
	cfg, err := config.Parse()
	require.NoError(t, err)

	ctx := context.Background()
	db, err := database.NewSurrealDB(ctx, cfg)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(func() {
		_, _ = surrealdb.Query[any](context.Background(), db, "DELETE card", nil)
		_ = db.Close(context.Background())
	})
	_, err = surrealdb.Query[any](ctx, db, "DELETE card", nil)
	require.NoError(t, err)

	repo := database.NewSurrealCardRepository(db, 5*time.Second, 5*time.Second)
	require.NoError(t, repo.Seed(ctx, seed))
	return repo
}

func TestCardRepositories(t *testing.T) {
	factories := map[string]repoFactory{
		"memory":  memoryFactory,
		"file":    fileFactory,
		"surreal": surrealFactory,
	}
	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			runRepositoryContract(t, factory)
		})
	}
}

func runRepositoryContract(t *testing.T, newRepo repoFactory) {
	ctx := context.Background()

	t.Run("list returns the user's seed cards in creation order", func(t *testing.T) {
		repo := newRepo(t, database.SeedCards())

		cards, err := repo.List(ctx, database.SeedUserID)
		require.NoError(t, err)
		require.Len(t, cards, 3)
		assert.Equal(t, []string{"1", "2", "3"}, []string{cards[0].ID, cards[1].ID, cards[2].ID})
		assert.Equal(t, "Marketing Director Card", cards[0].Title)
		assert.Equal(t, "www.example.com", cards[0].Profile.Website)

		others, err := repo.List(ctx, "someone-else")
		require.NoError(t, err)
		assert.Empty(t, others)
	})

	t.Run("get", func(t *testing.T) {
		repo := newRepo(t, database.SeedCards())

		card, err := repo.Get(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeElegant, card.Theme)
		assert.True(t, card.CreatedAt.Equal(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)))

		_, err = repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		var storeErr *database.StoreError
		assert.True(t, errors.As(err, &storeErr))
	})

	t.Run("create update delete", func(t *testing.T) {
		repo := newRepo(t, nil)
		now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		card := &domain.Card{
			ID:        "new-card",
			UserID:    "user1",
			Title:     "Fresh",
			Theme:     domain.ThemeBold,
			CreatedAt: now,
			UpdatedAt: now,
			Profile:   domain.ProfileFields{FullName: "Jane Doe"},
		}

		created, err := repo.Create(ctx, card)
		require.NoError(t, err)
		assert.Equal(t, "new-card", created.ID)

		_, err = repo.Create(ctx, card)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		card.Title = "Renamed"
		updated, err := repo.Update(ctx, card)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)

		got, err := repo.Get(ctx, "new-card")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, "Jane Doe", got.Profile.FullName)

		require.NoError(t, repo.Delete(ctx, "new-card"))
		_, err = repo.Get(ctx, "new-card")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "new-card"), domain.ErrNotFound)
	})

	t.Run("update of unknown card", func(t *testing.T) {
		repo := newRepo(t, nil)
		_, err := repo.Update(ctx, &domain.Card{ID: "ghost", UserID: "user1"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("create without id", func(t *testing.T) {
		repo := newRepo(t, nil)
		_, err := repo.Create(ctx, &domain.Card{Title: "no id"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestMemoryCardRepository_LatencyHonoursContext(t *testing.T) {
	repo := database.NewMemoryCardRepository(database.SeedCards(), time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := repo.List(ctx, database.SeedUserID)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryCardRepository_SeedIsCopied(t *testing.T) {
	seed := database.SeedCards()
	repo := database.NewMemoryCardRepository(seed, 0)

	require.NoError(t, repo.Delete(context.Background(), "1"))
	assert.Len(t, seed, 3)
}

func TestFileCardRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("seed only into an empty directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		repo, err := database.NewFileCardRepository(fs, "data/cards")
		require.NoError(t, err)

		wrote, err := repo.SeedIfEmpty(ctx, database.SeedCards())
		require.NoError(t, err)
		assert.True(t, wrote)

		wrote, err = repo.SeedIfEmpty(ctx, database.SeedCards())
		require.NoError(t, err)
		assert.False(t, wrote)

		exists, err := afero.Exists(fs, "data/cards/1.json")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("rejects ids that escape the directory", func(t *testing.T) {
		repo, err := database.NewFileCardRepository(afero.NewMemMapFs(), "cards")
		require.NoError(t, err)

		for _, id := range []string{"../etc", "a/b", `a\b`} {
			_, err := repo.Get(ctx, id)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "id %q", id)
		}
	})

	t.Run("survives a new repository on the same filesystem", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		first, err := database.NewFileCardRepository(fs, "cards")
		require.NoError(t, err)
		_, err = first.Create(ctx, &domain.Card{ID: "persisted", UserID: "u", Title: "Kept"})
		require.NoError(t, err)

		second, err := database.NewFileCardRepository(fs, "cards")
		require.NoError(t, err)
		card, err := second.Get(ctx, "persisted")
		require.NoError(t, err)
		assert.Equal(t, "Kept", card.Title)
	})
}

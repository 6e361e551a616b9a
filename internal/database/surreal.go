package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nexcard/nexcard/internal/config"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const cardTable = "card"

// NewSurrealDB opens, authenticates and scopes a SurrealDB connection.
func NewSurrealDB(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb: %w", err)
	}

	authData := &surrealdb.Auth{
		Username: cfg.GetDBUser(),
		Password: cfg.GetDBPass(),
	}
	if _, err = db.SignIn(ctx, authData); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.Info("Connected to SurrealDB", "namespace", cfg.GetDBNs(), "database", cfg.GetDBDb())
	return db, nil
}

// cardRecord is the stored shape of a card.
type cardRecord struct {
	ID        *models.RecordID      `json:"id,omitempty"`
	UserID    string                `json:"user_id"`
	TeamID    string                `json:"team_id,omitempty"`
	Title     string                `json:"title"`
	Theme     string                `json:"theme"`
	IsPublic  bool                  `json:"is_public"`
	CreatedAt models.CustomDateTime `json:"created_at"`
	UpdatedAt models.CustomDateTime `json:"updated_at"`
	Profile   domain.ProfileFields  `json:"profile"`
}

func toRecord(c *domain.Card) cardRecord {
	return cardRecord{
		UserID:    c.UserID,
		TeamID:    c.TeamID,
		Title:     c.Title,
		Theme:     string(c.Theme),
		IsPublic:  c.IsPublic,
		CreatedAt: models.CustomDateTime{Time: c.CreatedAt},
		UpdatedAt: models.CustomDateTime{Time: c.UpdatedAt},
		Profile:   c.Profile,
	}
}

func (rec cardRecord) toCard() domain.Card {
	var id string
	if rec.ID != nil {
		id = fmt.Sprint(rec.ID.ID)
	}
	return domain.Card{
		ID:        id,
		UserID:    rec.UserID,
		TeamID:    rec.TeamID,
		Title:     rec.Title,
		Theme:     domain.Theme(rec.Theme),
		IsPublic:  rec.IsPublic,
		CreatedAt: rec.CreatedAt.Time,
		UpdatedAt: rec.UpdatedAt.Time,
		Profile:   rec.Profile,
	}
}

func recordID(id string) models.RecordID {
	return models.NewRecordID(cardTable, id)
}

// SurrealCardRepository stores cards in the "card" table.
type SurrealCardRepository struct {
	db             *surrealdb.DB
	queryTimeout   time.Duration
	executeTimeout time.Duration
}

// NewSurrealCardRepository wraps an open connection.
func NewSurrealCardRepository(db *surrealdb.DB, queryTimeout, executeTimeout time.Duration) *SurrealCardRepository {
	return &SurrealCardRepository{db: db, queryTimeout: queryTimeout, executeTimeout: executeTimeout}
}

func (r *SurrealCardRepository) List(ctx context.Context, userID string) ([]domain.Card, error) {
	ctx, cancel := getTimeoutFromContext(ctx, r.queryTimeout, ContextKeyQueryTimeout)
	defer cancel()

	const q = "SELECT * FROM card WHERE user_id = $user ORDER BY created_at ASC"
	rows, err := Query[cardRecord](ctx, r.db, q, map[string]any{"user": userID})
	if err != nil {
		return nil, &StoreError{Op: "list cards", Query: q, Err: err}
	}
	cards := make([]domain.Card, 0, len(rows))
	for _, rec := range rows {
		cards = append(cards, rec.toCard())
	}
	return cards, nil
}

func (r *SurrealCardRepository) Get(ctx context.Context, id string) (*domain.Card, error) {
	ctx, cancel := getTimeoutFromContext(ctx, r.queryTimeout, ContextKeyQueryTimeout)
	defer cancel()

	rec, err := QueryOne[cardRecord](ctx, r.db, "SELECT * FROM $rid", map[string]any{"rid": recordID(id)})
	if err != nil {
		return nil, storeErr("get card", id, err)
	}
	if rec == nil {
		return nil, storeErr("get card", id, domain.ErrNotFound)
	}
	card := rec.toCard()
	return &card, nil
}

func (r *SurrealCardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if card == nil || card.ID == "" {
		return nil, storeErr("create card", "", domain.ErrInvalidInput)
	}
	ctx, cancel := getTimeoutFromContext(ctx, r.executeTimeout, ContextKeyExecuteTimeout)
	defer cancel()

	rec, err := QueryOne[cardRecord](ctx, r.db, "CREATE $rid CONTENT $data", map[string]any{
		"rid":  recordID(card.ID),
		"data": toRecord(card),
	})
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil, storeErr("create card", card.ID, domain.ErrAlreadyExists)
		}
		return nil, storeErr("create card", card.ID, err)
	}
	if rec == nil {
		return nil, storeErr("create card", card.ID, fmt.Errorf("no record returned"))
	}
	created := rec.toCard()
	return &created, nil
}

// Update replaces an existing card. SurrealDB's UPDATE returns no row for a
// missing record, which maps to ErrNotFound.
func (r *SurrealCardRepository) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if card == nil || card.ID == "" {
		return nil, storeErr("update card", "", domain.ErrInvalidInput)
	}
	ctx, cancel := getTimeoutFromContext(ctx, r.executeTimeout, ContextKeyExecuteTimeout)
	defer cancel()

	rec, err := QueryOne[cardRecord](ctx, r.db, "UPDATE $rid CONTENT $data", map[string]any{
		"rid":  recordID(card.ID),
		"data": toRecord(card),
	})
	if err != nil {
		return nil, storeErr("update card", card.ID, err)
	}
	if rec == nil {
		return nil, storeErr("update card", card.ID, domain.ErrNotFound)
	}
	updated := rec.toCard()
	return &updated, nil
}

func (r *SurrealCardRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := getTimeoutFromContext(ctx, r.executeTimeout, ContextKeyExecuteTimeout)
	defer cancel()

	rec, err := QueryOne[cardRecord](ctx, r.db, "DELETE $rid RETURN BEFORE", map[string]any{"rid": recordID(id)})
	if err != nil {
		return storeErr("delete card", id, err)
	}
	if rec == nil {
		return storeErr("delete card", id, domain.ErrNotFound)
	}
	return nil
}

// Seed inserts cards that are not stored yet.
func (r *SurrealCardRepository) Seed(ctx context.Context, cards []domain.Card) error {
	for i := range cards {
		if _, err := r.Get(ctx, cards[i].ID); err == nil {
			continue
		}
		if _, err := r.Create(ctx, &cards[i]); err != nil {
			return err
		}
	}
	return nil
}

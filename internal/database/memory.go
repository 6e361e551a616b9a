package database

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/nexcard/nexcard/internal/domain"
)

// MemoryCardRepository keeps cards in process memory. An optional delay is
// applied to every call to imitate a remote backend.
type MemoryCardRepository struct {
	mu      sync.RWMutex
	cards   []domain.Card
	latency time.Duration
}

// NewMemoryCardRepository creates a store holding a copy of seed.
func NewMemoryCardRepository(seed []domain.Card, latency time.Duration) *MemoryCardRepository {
	return &MemoryCardRepository{cards: slices.Clone(seed), latency: latency}
}

// wait sleeps for the simulated latency, returning early when ctx ends.
func (r *MemoryCardRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *MemoryCardRepository) index(id string) int {
	return slices.IndexFunc(r.cards, func(c domain.Card) bool { return c.ID == id })
}

func (r *MemoryCardRepository) List(ctx context.Context, userID string) ([]domain.Card, error) {
	if err := r.wait(ctx); err != nil {
		return nil, storeErr("list cards", "", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Card, 0, len(r.cards))
	for _, c := range r.cards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemoryCardRepository) Get(ctx context.Context, id string) (*domain.Card, error) {
	if err := r.wait(ctx); err != nil {
		return nil, storeErr("get card", id, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, storeErr("get card", id, domain.ErrNotFound)
	}
	c := r.cards[i]
	return &c, nil
}

func (r *MemoryCardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if card == nil || card.ID == "" {
		return nil, storeErr("create card", "", domain.ErrInvalidInput)
	}
	if err := r.wait(ctx); err != nil {
		return nil, storeErr("create card", card.ID, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index(card.ID) >= 0 {
		return nil, storeErr("create card", card.ID, domain.ErrAlreadyExists)
	}
	r.cards = append(r.cards, *card)
	c := *card
	return &c, nil
}

func (r *MemoryCardRepository) Update(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	if card == nil || card.ID == "" {
		return nil, storeErr("update card", "", domain.ErrInvalidInput)
	}
	if err := r.wait(ctx); err != nil {
		return nil, storeErr("update card", card.ID, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(card.ID)
	if i < 0 {
		return nil, storeErr("update card", card.ID, domain.ErrNotFound)
	}
	r.cards[i] = *card
	c := *card
	return &c, nil
}

func (r *MemoryCardRepository) Delete(ctx context.Context, id string) error {
	if err := r.wait(ctx); err != nil {
		return storeErr("delete card", id, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return storeErr("delete card", id, domain.ErrNotFound)
	}
	r.cards = slices.Delete(r.cards, i, i+1)
	return nil
}

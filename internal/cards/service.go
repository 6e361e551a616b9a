package cards

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/events"
	"github.com/nexcard/nexcard/internal/pubsub"
)

// Service runs the card operations for signed-in users on top of a
// repository. Every successful change is published on the event bus.
type Service struct {
	repo  domain.CardRepository
	pub   pubsub.Publisher
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a Service. pub may be nil, in which case no events are
// published.
func NewService(repo domain.CardRepository, pub pubsub.Publisher, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		pub:   pub,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the user's cards filtered and ordered by q.
func (s *Service) List(ctx context.Context, userID string, q Query) ([]domain.Card, error) {
	all, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return q.Apply(all), nil
}

// Fetch returns a card by id. It satisfies domain.CardFetcher.
func (s *Service) Fetch(ctx context.Context, id string) (*domain.Card, error) {
	card, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch card %q: %w", id, err)
	}
	return card, nil
}

// View fetches a card for its public page as seen by viewerID, which is
// empty for anonymous visitors. Private cards are not found for anyone but
// their owner. Only a card that is shown counts as viewed.
func (s *Service) View(ctx context.Context, id, viewerID string) (*domain.Card, error) {
	card, err := s.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !card.IsPublic && (viewerID == "" || viewerID != card.UserID) {
		return nil, fmt.Errorf("card %q is private: %w", id, domain.ErrNotFound)
	}
	s.publish(ctx, events.CardViewed, card.UserID, events.ForCard(*card, s.now()))
	return card, nil
}

// owned fetches a card and hides cards that belong to someone else.
func (s *Service) owned(ctx context.Context, userID, id string) (*domain.Card, error) {
	card, err := s.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		return nil, fmt.Errorf("card %q: %w", id, domain.ErrNotFound)
	}
	return card, nil
}

// Owned returns the user's card with the given id.
func (s *Service) Owned(ctx context.Context, userID, id string) (*domain.Card, error) {
	return s.owned(ctx, userID, id)
}

// SaveDraft stores a finished draft. An empty cardID creates a new card;
// otherwise the user's existing card is updated in place.
func (s *Service) SaveDraft(ctx context.Context, userID, cardID string, d domain.Draft) (id string, err error) {
	defer func() { observe("save", err) }()

	if strings.TrimSpace(d.Title) == "" {
		return "", fmt.Errorf("save card: empty title: %w", domain.ErrInvalidInput)
	}
	now := s.now()

	if cardID == "" {
		card := &domain.Card{
			ID:        s.newID(),
			UserID:    userID,
			Title:     d.Title,
			Theme:     d.Theme,
			IsPublic:  true,
			CreatedAt: now,
			UpdatedAt: now,
			Profile:   d.Profile,
		}
		created, err := s.repo.Create(ctx, card)
		if err != nil {
			return "", fmt.Errorf("create card: %w", err)
		}
		s.publish(ctx, events.CardCreated, userID, events.ForCard(*created, now))
		return created.ID, nil
	}

	card, err := s.owned(ctx, userID, cardID)
	if err != nil {
		return "", err
	}
	card.Title = d.Title
	card.Theme = d.Theme
	card.Profile = d.Profile
	card.UpdatedAt = now
	updated, err := s.repo.Update(ctx, card)
	if err != nil {
		return "", fmt.Errorf("update card: %w", err)
	}
	s.publish(ctx, events.CardUpdated, userID, events.ForCard(*updated, now))
	return updated.ID, nil
}

// Saver binds SaveDraft to a user and target card so it can be handed to the
// wizard as its save collaborator.
func (s *Service) Saver(userID, cardID string) domain.CardSaver {
	return boundSaver{svc: s, userID: userID, cardID: cardID}
}

type boundSaver struct {
	svc    *Service
	userID string
	cardID string
}

func (b boundSaver) Save(ctx context.Context, d domain.Draft) (string, error) {
	return b.svc.SaveDraft(ctx, b.userID, b.cardID, d)
}

// Delete removes one of the user's cards.
func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	defer func() { observe("delete", err) }()

	card, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete card %q: %w", id, err)
	}
	s.publish(ctx, events.CardDeleted, userID, events.ForCard(*card, s.now()))
	return nil
}

// Duplicate stores a copy of one of the user's cards and returns it.
func (s *Service) Duplicate(ctx context.Context, userID, id string) (dup *domain.Card, err error) {
	defer func() { observe("duplicate", err) }()

	all, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	_, cp, err := Duplicate(all, id, s.now(), s.newID())
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, &cp)
	if err != nil {
		return nil, fmt.Errorf("store duplicate of %q: %w", id, err)
	}
	evt := events.ForCard(*created, created.CreatedAt)
	evt.SourceID = id
	s.publish(ctx, events.CardDuplicated, userID, evt)
	return created, nil
}

// publish is best effort: a card change is never rolled back because the
// bus refused an event.
func (s *Service) publish(ctx context.Context, event pubsub.Event[events.CardEvent], userID string, payload events.CardEvent) {
	if s.pub == nil {
		return
	}
	if err := pubsub.Publish(ctx, s.pub, event, userID, payload); err != nil {
		slog.WarnContext(ctx, "Failed to publish card event", "topic", event.Name(), "card_id", payload.CardID, "error", err)
	}
}

// IsNotFound reports whether err means the card does not exist for the caller.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// Package events declares the card lifecycle topics published on the bus.
package events

import (
	"time"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/pubsub"
)

// CardEvent is the payload of every card topic.
type CardEvent struct {
	CardID   string       `json:"cardId"`
	Title    string       `json:"title"`
	Theme    domain.Theme `json:"theme"`
	SourceID string       `json:"sourceId,omitempty"`
	At       time.Time    `json:"at"`
}

var (
	CardCreated    = pubsub.NewEvent[CardEvent]("card.created")
	CardUpdated    = pubsub.NewEvent[CardEvent]("card.updated")
	CardDeleted    = pubsub.NewEvent[CardEvent]("card.deleted")
	CardDuplicated = pubsub.NewEvent[CardEvent]("card.duplicated")
	CardViewed     = pubsub.NewEvent[CardEvent]("card.viewed")
)

// All lists every card topic, in the order they are subscribed.
var All = []pubsub.Event[CardEvent]{CardCreated, CardUpdated, CardDeleted, CardDuplicated, CardViewed}

// ForCard builds the payload describing card at time at.
func ForCard(card domain.Card, at time.Time) CardEvent {
	return CardEvent{CardID: card.ID, Title: card.Title, Theme: card.Theme, At: at}
}

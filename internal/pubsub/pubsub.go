// Package pubsub carries card events between the card service and the
// analytics tracker. Delivery is in-process and at most once.
package pubsub

import (
	"context"
)

// Message is one event on the bus.
type Message struct {
	Topic  string // card.created, card.viewed, ...
	UserID string // the acting user, empty for anonymous viewers

	// Payload is the JSON event body.
	Payload []byte
	// Metadata is copied to every subscriber unchanged.
	Metadata map[string]string
}

// Handler consumes one message. A returned error is logged and the message
// is dropped.
type Handler func(ctx context.Context, msg Message) error

// Publisher puts messages on the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber registers handlers for a topic. Subscribe returns once the
// subscription is live; the handler then runs on its own goroutine until
// ctx is done or the bus closes.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

package pubsub

import (
	"context"
	"log/slog"
	"maps"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Reserved metadata keys. Anything else in Message.Metadata travels as is.
const (
	metaUserID = "nexcard_user_id"
	metaTopic  = "nexcard_topic"
)

// WatermillBridge is the Publisher and Subscriber backed by watermill's
// in-memory GoChannel. Each subscriber gets its own copy of every message
// published on its topic.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	log     *slog.Logger
}

// Option configures a WatermillBridge.
type Option func(*WatermillBridge)

// WithLogger routes bus diagnostics to l instead of slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(wb *WatermillBridge) { wb.log = l }
}

// NewWatermillBridge creates an in-memory bus.
func NewWatermillBridge(opts ...Option) *WatermillBridge {
	wb := &WatermillBridge{log: slog.Default()}
	for _, opt := range opts {
		opt(wb)
	}
	wb.log = wb.log.With("component", "pubsub")
	wb.channel = gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		slogAdapter{wb.log},
	)
	return wb
}

// Publish sends msg to every subscriber of msg.Topic.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	maps.Copy(wm.Metadata, msg.Metadata)
	wm.Metadata.Set(metaUserID, msg.UserID)
	wm.Metadata.Set(metaTopic, msg.Topic)
	wm.SetContext(ctx)
	return wb.channel.Publish(msg.Topic, wm)
}

// Subscribe returns once the subscription is active; messages are handled
// in a background goroutine until ctx ends or the bus is closed.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			if err := handler(ctx, fromWatermill(wm)); err != nil {
				// A nacked message would be redelivered forever by the
				// in-memory channel.
				wb.log.Error("Failed to handle message", "topic", topic, "msg_id", wm.UUID, "error", err)
			}
			wm.Ack()
		}
		wb.log.Debug("Subscription ended", "topic", topic)
	}()
	return nil
}

func fromWatermill(wm *message.Message) Message {
	msg := Message{
		Topic:    wm.Metadata.Get(metaTopic),
		UserID:   wm.Metadata.Get(metaUserID),
		Payload:  wm.Payload,
		Metadata: make(map[string]string, len(wm.Metadata)),
	}
	for k, v := range wm.Metadata {
		if k != metaUserID && k != metaTopic {
			msg.Metadata[k] = v
		}
	}
	return msg
}

// Close shuts down the bus and ends every subscription loop.
func (wb *WatermillBridge) Close() error {
	return wb.channel.Close()
}

// Shutdown closes the bus when the application exits.
func (wb *WatermillBridge) Shutdown() error {
	return wb.Close()
}

// slogAdapter lets watermill log through slog.
type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) attrs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

func (a slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.l.Error(msg, append(a.attrs(fields), "error", err)...)
}

func (a slogAdapter) Info(msg string, fields watermill.LogFields) {
	// watermill's info output is per-subscription chatter.
	a.l.Debug(msg, a.attrs(fields)...)
}

func (a slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.l.Debug(msg, a.attrs(fields)...)
}

func (a slogAdapter) Trace(msg string, fields watermill.LogFields) {}

func (a slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return slogAdapter{a.l.With(a.attrs(fields)...)}
}

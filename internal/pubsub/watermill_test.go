package pubsub_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nexcard/nexcard/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct {
	Seq int `json:"seq"`
}

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{
		Topic:    "test.topic",
		UserID:   "user1",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"source": "test"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "user1", msg.UserID)
		assert.Equal(t, []byte("hello"), msg.Payload)
		assert.Equal(t, "test", msg.Metadata["source"])
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestTypedEvents(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := pubsub.NewEvent[ping]("test.ping")
	got := make(chan ping, 2)
	require.NoError(t, pubsub.SubscribeTyped(ctx, bridge, event, func(ctx context.Context, userID string, p ping) error {
		assert.Equal(t, "user1", userID)
		got <- p
		return nil
	}))

	require.NoError(t, pubsub.Publish(ctx, bridge, event, "user1", ping{Seq: 1}))
	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: "test.ping", UserID: "user1", Payload: []byte("{bad")}))
	require.NoError(t, pubsub.Publish(ctx, bridge, event, "user1", ping{Seq: 2}))

	var seqs []int
	for len(seqs) < 2 {
		select {
		case p := <-got:
			seqs = append(seqs, p.Seq)
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d events delivered", len(seqs))
		}
	}
	assert.ElementsMatch(t, []int{1, 2}, seqs)
}

func TestWatermillBridge_LogsHandlerErrors(t *testing.T) {
	buf := &lockedBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bridge := pubsub.NewWatermillBridge(pubsub.WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{}, 2)
	require.NoError(t, bridge.Subscribe(ctx, "test.fail", func(ctx context.Context, msg pubsub.Message) error {
		defer func() { done <- struct{}{} }()
		if string(msg.Payload) == "boom" {
			return errors.New("handler failed")
		}
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: "test.fail", Payload: []byte("boom")}))
	require.NoError(t, bridge.Publish(ctx, pubsub.Message{Topic: "test.fail", Payload: []byte("ok")}))

	for range 2 {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("message was not delivered after a handler error")
		}
	}
	t.Cleanup(func() { _ = bridge.Close() })

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "Failed to handle message")
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, buf.String(), "component=pubsub")
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

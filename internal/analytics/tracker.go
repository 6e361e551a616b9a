// Package analytics counts card events per user. Counters live in memory and
// start at zero on every process start.
package analytics

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/nexcard/nexcard/internal/domain"
	"github.com/nexcard/nexcard/internal/events"
	"github.com/nexcard/nexcard/internal/pubsub"
)

// Kind is the type of a recorded activity.
type Kind string

const (
	KindCreated    Kind = "created"
	KindUpdated    Kind = "updated"
	KindDeleted    Kind = "deleted"
	KindDuplicated Kind = "duplicated"
	KindViewed     Kind = "viewed"
)

var topicKinds = map[string]Kind{
	events.CardCreated.Name():    KindCreated,
	events.CardUpdated.Name():    KindUpdated,
	events.CardDeleted.Name():    KindDeleted,
	events.CardDuplicated.Name(): KindDuplicated,
	events.CardViewed.Name():     KindViewed,
}

// Range limits a snapshot to recent activity.
type Range string

const (
	Range7Days  Range = "7d"
	Range30Days Range = "30d"
	Range90Days Range = "90d"
	RangeAll    Range = "all"
)

// Ranges lists the selectable ranges in display order.
var Ranges = []Range{Range7Days, Range30Days, Range90Days, RangeAll}

// ParseRange maps a query value to a Range, defaulting to 30 days.
func ParseRange(s string) Range {
	r := Range(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Ranges, r) {
		return r
	}
	return Range30Days
}

// Label returns the button caption for r.
func (r Range) Label() string {
	switch r {
	case Range7Days:
		return "7 days"
	case Range90Days:
		return "90 days"
	case RangeAll:
		return "All time"
	default:
		return "30 days"
	}
}

// Since returns the start of the range relative to now, or the zero time
// for RangeAll.
func (r Range) Since(now time.Time) time.Time {
	switch r {
	case Range7Days:
		return now.AddDate(0, 0, -7)
	case Range30Days:
		return now.AddDate(0, 0, -30)
	case Range90Days:
		return now.AddDate(0, 0, -90)
	default:
		return time.Time{}
	}
}

// Activity is one recorded card event.
type Activity struct {
	Kind   Kind
	CardID string
	Title  string
	At     time.Time
}

// Describe returns a short human sentence for the activity feed.
func (a Activity) Describe() string {
	switch a.Kind {
	case KindCreated:
		return "Card created"
	case KindUpdated:
		return "Card updated"
	case KindDeleted:
		return "Card deleted"
	case KindDuplicated:
		return "Card duplicated"
	case KindViewed:
		return "Card viewed"
	default:
		return fmt.Sprintf("Card %s", a.Kind)
	}
}

// CardStats are the counters of one card within a snapshot's range.
type CardStats struct {
	CardID     string
	Title      string
	Theme      domain.Theme
	Views      int
	Saves      int
	Duplicates int
}

// Snapshot is a read-only view of a user's counters.
type Snapshot struct {
	Range      Range
	Views      int
	Saves      int
	Duplicates int
	Deletes    int
	// Popular is ordered by views, most viewed first.
	Popular []CardStats
	// Recent holds the newest activity first.
	Recent []Activity
}

const (
	maxActivity  = 1000
	recentLimit  = 10
	popularLimit = 5
)

type userLog struct {
	activity []Activity
	themes   map[string]domain.Theme
}

// Tracker records card events and serves per-user snapshots.
type Tracker struct {
	mu       sync.RWMutex
	users    map[string]*userLog
	watchers map[string]map[chan struct{}]struct{}
	now      func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		users:    make(map[string]*userLog),
		watchers: make(map[string]map[chan struct{}]struct{}),
		now:      time.Now,
	}
}

// Subscribe feeds every card topic from sub into the tracker until ctx ends.
func (t *Tracker) Subscribe(ctx context.Context, sub pubsub.Subscriber) error {
	for _, event := range events.All {
		kind := topicKinds[event.Name()]
		err := pubsub.SubscribeTyped(ctx, sub, event, func(ctx context.Context, userID string, e events.CardEvent) error {
			t.Record(userID, kind, e)
			return nil
		})
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", event.Name(), err)
		}
	}
	return nil
}

// Record adds one event for userID and wakes that user's watchers.
func (t *Tracker) Record(userID string, kind Kind, e events.CardEvent) {
	at := e.At
	if at.IsZero() {
		at = t.now()
	}

	t.mu.Lock()
	log, ok := t.users[userID]
	if !ok {
		log = &userLog{themes: make(map[string]domain.Theme)}
		t.users[userID] = log
	}
	cardID := e.CardID
	if kind == KindDuplicated && e.SourceID != "" {
		// Duplicates are credited to the card that was copied.
		cardID = e.SourceID
	}
	log.activity = append(log.activity, Activity{Kind: kind, CardID: cardID, Title: e.Title, At: at})
	if len(log.activity) > maxActivity {
		log.activity = slices.Clone(log.activity[len(log.activity)-maxActivity:])
	}
	if e.Theme != "" {
		log.themes[e.CardID] = e.Theme
	}
	watchers := make([]chan struct{}, 0, len(t.watchers[userID]))
	for ch := range t.watchers[userID] {
		watchers = append(watchers, ch)
	}
	t.mu.Unlock()

	for _, ch := range watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Snapshot summarizes userID's activity within r.
func (t *Tracker) Snapshot(userID string, r Range) Snapshot {
	since := r.Since(t.now())

	t.mu.RLock()
	defer t.mu.RUnlock()

	snap := Snapshot{Range: r}
	log, ok := t.users[userID]
	if !ok {
		return snap
	}

	perCard := make(map[string]*CardStats)
	stats := func(a Activity) *CardStats {
		s, ok := perCard[a.CardID]
		if !ok {
			s = &CardStats{CardID: a.CardID, Title: a.Title, Theme: log.themes[a.CardID]}
			perCard[a.CardID] = s
		}
		if a.Kind != KindDuplicated && a.Title != "" {
			s.Title = a.Title
		}
		return s
	}
	deleted := make(map[string]bool)

	for _, a := range log.activity {
		if a.Kind == KindDeleted {
			deleted[a.CardID] = true
		}
		if a.At.Before(since) {
			continue
		}
		switch a.Kind {
		case KindViewed:
			snap.Views++
			stats(a).Views++
		case KindCreated, KindUpdated:
			snap.Saves++
			stats(a).Saves++
		case KindDuplicated:
			snap.Duplicates++
			stats(a).Duplicates++
		case KindDeleted:
			snap.Deletes++
		}
	}

	for id, s := range perCard {
		if deleted[id] || s.Views == 0 {
			continue
		}
		snap.Popular = append(snap.Popular, *s)
	}
	slices.SortFunc(snap.Popular, func(a, b CardStats) int {
		if a.Views != b.Views {
			return b.Views - a.Views
		}
		return strings.Compare(a.Title, b.Title)
	})
	if len(snap.Popular) > popularLimit {
		snap.Popular = snap.Popular[:popularLimit]
	}

	for i := len(log.activity) - 1; i >= 0 && len(snap.Recent) < recentLimit; i-- {
		a := log.activity[i]
		if a.At.Before(since) {
			continue
		}
		snap.Recent = append(snap.Recent, a)
	}
	return snap
}

// Watch returns a channel that receives a signal whenever userID's counters
// change. Signals are coalesced. The returned func stops the watch.
func (t *Tracker) Watch(userID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	t.mu.Lock()
	if t.watchers[userID] == nil {
		t.watchers[userID] = make(map[chan struct{}]struct{})
	}
	t.watchers[userID][ch] = struct{}{}
	t.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.watchers[userID], ch)
			if len(t.watchers[userID]) == 0 {
				delete(t.watchers, userID)
			}
			t.mu.Unlock()
		})
	}
}

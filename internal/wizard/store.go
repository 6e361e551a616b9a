package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDraftTTL is how long an untouched draft is kept.
const DefaultDraftTTL = 24 * time.Hour

type storedDraft struct {
	state   State
	touched time.Time
}

// Store keeps wizard states between requests, keyed by an opaque draft key.
// Only the key travels to the browser, so drafts may be of any size.
type Store struct {
	mu     sync.Mutex
	drafts map[string]storedDraft
	ttl    time.Duration
	now    func() time.Time
}

// NewStore creates a store that forgets drafts untouched for ttl.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &Store{drafts: make(map[string]storedDraft), ttl: ttl, now: time.Now}
}

// Get returns the state saved under key.
func (s *Store) Get(key string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[key]
	if !ok {
		return State{}, false
	}
	if s.now().Sub(d.touched) > s.ttl {
		delete(s.drafts, key)
		return State{}, false
	}
	return d.state, true
}

// Put saves state under key. An empty key allocates a new one, which is
// returned.
func (s *Store) Put(key string, state State) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evict(now)
	if key == "" {
		key = uuid.NewString()
	}
	s.drafts[key] = storedDraft{state: state, touched: now}
	return key
}

// Delete forgets the draft under key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.drafts, key)
	s.mu.Unlock()
}

// Len counts the drafts held, expired ones included until the next Put.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *Store) evict(now time.Time) {
	for k, d := range s.drafts {
		if now.Sub(d.touched) > s.ttl {
			delete(s.drafts, k)
		}
	}
}

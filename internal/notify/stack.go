package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Stack is a bounded most-recent-first toast queue. Every entry gets an
// expiry timer keyed by its ID; dismissing or evicting an entry cancels
// its timer, so a reused display slot can never be cleared by a stale
// timer.
type Stack struct {
	mu       sync.Mutex
	capacity int
	expiry   time.Duration
	entries  []Notification
	timers   map[uuid.UUID]*time.Timer
}

// NewStack creates a toast stack with the given capacity and per-entry
// expiry delay.
func NewStack(capacity int, expiry time.Duration) *Stack {
	if capacity < 1 {
		capacity = 1
	}
	return &Stack{
		capacity: capacity,
		expiry:   expiry,
		timers:   make(map[uuid.UUID]*time.Timer),
	}
}

// Push prepends a notification, evicting the oldest entry beyond
// capacity, and schedules its expiry.
func (s *Stack) Push(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]Notification{n}, s.entries...)

	if len(s.entries) > s.capacity {
		oldest := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]
		s.cancelTimer(oldest.ID)
	}

	id := n.ID
	s.timers[id] = time.AfterFunc(s.expiry, func() {
		s.Dismiss(id)
	})
}

// Dismiss removes the entry with the given ID, if still present, and
// cancels its pending expiry. Returns whether an entry was removed.
func (s *Stack) Dismiss(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimer(id)

	for i, n := range s.entries {
		if n.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the current entries, most recent first.
func (s *Stack) Entries() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Notification, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of displayed entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// cancelTimer stops and forgets the expiry timer for an entry.
// Must be called with the lock held.
func (s *Stack) cancelTimer(id uuid.UUID) {
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

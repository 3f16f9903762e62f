package notify

import (
	"strconv"
	"sync"
)

// Bell is the history panel: a bounded most-recent-first queue with no
// expiry, plus an unread counter that resets when the panel is opened.
type Bell struct {
	mu       sync.Mutex
	capacity int
	entries  []Notification
	unread   int
}

// NewBell creates a bell panel holding at most capacity entries.
func NewBell(capacity int) *Bell {
	if capacity < 1 {
		capacity = 1
	}
	return &Bell{capacity: capacity}
}

// Add prepends a notification, evicting the oldest beyond capacity, and
// increments the unread counter.
func (b *Bell) Add(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append([]Notification{n}, b.entries...)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
	b.unread++
}

// Entries returns a copy of the current entries, most recent first.
func (b *Bell) Entries() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notification, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of held entries.
func (b *Bell) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Unread returns the number of arrivals since the panel was last opened.
func (b *Bell) Unread() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unread
}

// UnreadLabel returns the unread count for display, saturating at "99+".
func (b *Bell) UnreadLabel() string {
	n := b.Unread()
	if n > 99 {
		return "99+"
	}
	return strconv.Itoa(n)
}

// MarkRead resets the unread counter; called when the user opens the
// panel.
func (b *Bell) MarkRead() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unread = 0
}

package notify

import (
	"sync"
	"time"
)

// SeenCache remembers identity keys of admitted events so reconnect
// redelivery does not display the same event twice. Bounded and
// TTL-windowed, so a long-running process does not grow without limit.
type SeenCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]time.Time // key → admitted at
	order    []string             // FIFO eviction order

	now func() time.Time
}

// NewSeenCache creates a cache holding at most capacity keys, each
// forgotten after ttl.
func NewSeenCache(capacity int, ttl time.Duration) *SeenCache {
	if capacity < 1 {
		capacity = 1
	}
	return &SeenCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]time.Time),
		now:      time.Now,
	}
}

// Admit records the key and reports whether it was absent. The first
// call for a key within the TTL window returns true; repeats return
// false.
func (c *SeenCache) Admit(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	if at, ok := c.entries[key]; ok {
		if c.ttl <= 0 || now.Sub(at) < c.ttl {
			return false
		}
		// Expired: treat as absent, refresh in place. The key is
		// already in the eviction order.
		c.entries[key] = now
		return true
	}

	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	c.entries[key] = now
	c.order = append(c.order, key)
	return true
}

// Len returns the number of remembered keys.
func (c *SeenCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest drops insertion-order entries until below capacity.
// Must be called with the lock held.
func (c *SeenCache) evictOldest() {
	for len(c.entries) >= c.capacity && len(c.order) > 0 {
		key := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, key)
	}
}

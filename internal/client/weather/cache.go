package weather

import (
	"strings"
	"sync"
	"time"
)

// Cache keeps the last Snapshot per city. Entries past the TTL are not
// served by Get but stay available through Last as an offline fallback;
// nothing is evicted until Clear.
type Cache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]Snapshot
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now, items: make(map[string]Snapshot)}
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Get returns the snapshot for city only if it is younger than the TTL.
func (c *Cache) Get(city string) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.items[cacheKey(city)]
	if !ok || c.now().Sub(snap.Timestamp) >= c.ttl {
		return Snapshot{}, false
	}
	return snap, true
}

// Last returns the snapshot for city regardless of age.
func (c *Cache) Last(city string) (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.items[cacheKey(city)]
	return snap, ok
}

// Set replaces whatever is stored for city and stamps it with the current time.
func (c *Cache) Set(city string, snap Snapshot) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap.Timestamp = c.now()
	c.items[cacheKey(city)] = snap
	return snap
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Snapshot)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

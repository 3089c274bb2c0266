// Package cache provides a process-lifetime TTL cache keyed by upstream
// resource id. Entries expire on read; nothing is evicted otherwise.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the cache validity window used throughout the engine.
const DefaultTTL = 10 * time.Minute

type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache is a TTL key/value store. The fetcher runs outside the lock, so
// concurrent misses on the same key may each invoke it; fetches are
// idempotent and coalescing them is not worth the locking.
type Cache[V any] struct {
	mu      sync.RWMutex
	now     func() time.Time
	entries map[string]entry[V]
}

// New creates a Cache using the given clock. A nil clock means time.Now;
// tests inject a fake clock for deterministic expiry.
func New[V any](now func() time.Time) *Cache[V] {
	if now == nil {
		now = time.Now
	}
	return &Cache[V]{
		now:     now,
		entries: make(map[string]entry[V]),
	}
}

// GetOrFetch returns the cached value for key if present and unexpired;
// otherwise it invokes fetch, stores the result with expiry now+ttl, and
// returns it. A fetch error is returned as-is and nothing is stored.
func (c *Cache[V]) GetOrFetch(key string, ttl time.Duration, fetch func() (V, error)) (V, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expires) {
		return e.value, nil
	}

	v, err := fetch()
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{value: v, expires: c.now().Add(ttl)}
	c.mu.Unlock()
	return v, nil
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

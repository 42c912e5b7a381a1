package services

import (
	"sync"
	"time"
)

type cacheEntry[T any] struct {
	value      T
	computedAt time.Time
}

// TTLCache holds the most recent summary per device ID and serves it while
// it is still inside the freshness window. Entries are replaced wholesale on
// recomputation, never mutated in place; expired entries are simply
// overwritten on the next Put, so no background sweep runs.
type TTLCache[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[int]cacheEntry[T]
}

// NewTTLCache creates an empty cache with the given freshness window.
func NewTTLCache[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[int]cacheEntry[T]),
	}
}

// Get returns the cached value for the key when one exists and is still
// fresh. Expired or absent entries are a miss.
func (c *TTLCache[T]) Get(key int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.computedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return entry.value, true
}

// Put stores a freshly computed value, stamping it with the current time.
func (c *TTLCache[T]) Put(key int, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry[T]{value: value, computedAt: c.now()}
}

// Invalidate removes the entry for one key so the next read recomputes.
func (c *TTLCache[T]) Invalidate(key int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// InvalidateAll empties the cache.
func (c *TTLCache[T]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int]cacheEntry[T])
}

// Package cache provides an in-process TTL cache for aggregated market data.
// Entries expire after a fixed duration and are evicted lazily on read.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is a mutex-guarded map with per-instance TTL. A disabled cache
// misses every Get and drops every Set, so callers never branch on the
// enabled flag themselves.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	enabled bool
	now     func() time.Time
}

// New creates a Cache with the given TTL. When enabled is false the cache
// stores nothing.
func New(ttl time.Duration, enabled bool) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		enabled: enabled,
		now:     time.Now,
	}
}

// Get returns the cached value for key, or false when the key is absent,
// expired, or the cache is disabled. Expired entries are evicted.
func (c *Cache) Get(key string) (any, bool) {
	if !c.enabled {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return e.value, true
}

// Set stores value under key. Disabled caches drop the value.
func (c *Cache) Set(key string, value any) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// Len returns the number of stored entries, including any not yet evicted.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Lookup returns the cached value for key as T. A value of the wrong type
// counts as a miss.
func Lookup[T any](c *Cache, key string) (T, bool) {
	var zero T

	value, ok := c.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// Package cache provides in-process caching infrastructure.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process TTL cache. Entries expire per-key and a
// background janitor evicts them.
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL.
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{
		c: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

// Get returns the value for key, if present and not expired.
func (m *Memory) Get(key string) (any, bool) {
	return m.c.Get(key)
}

// Set stores a value under key with the given TTL.
// A non-positive TTL falls back to the cache default.
func (m *Memory) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.c.Set(key, value, ttl)
}

// Delete removes a key.
func (m *Memory) Delete(key string) {
	m.c.Delete(key)
}

// Flush removes all entries.
func (m *Memory) Flush() {
	m.c.Flush()
}

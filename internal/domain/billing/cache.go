package billing

import (
	"fmt"
	"time"
)

// DefaultCacheTTL is the default lifetime of cached previews.
const DefaultCacheTTL = 3600 * time.Second

// Store is the cache handle contract. The in-memory implementation lives
// in infrastructure/cache; the handle is injected explicitly so the
// pipeline never reaches for process-global state.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
}

// CacheKey builds the deterministic cache key for a report request.
// Identical parameters always produce the identical key; no hashing,
// no randomization.
func CacheKey(customerID, start, end string, format Format) string {
	return fmt.Sprintf("billing_report_%s_%s_%s_%s", customerID, start, end, format)
}

// ReportCache caches rendered preview payloads with a fixed TTL.
// There is deliberately no stampede protection: concurrent generations
// for the same key each compute and store, last write wins.
type ReportCache struct {
	store Store
	ttl   time.Duration
}

// NewReportCache creates a report cache over the given store.
// Non-positive TTLs fall back to DefaultCacheTTL.
func NewReportCache(store Store, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ReportCache{store: store, ttl: ttl}
}

// GetPreview returns a cached preview, or nil on miss.
func (c *ReportCache) GetPreview(key string) (*PreviewData, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	preview, ok := v.(*PreviewData)
	if !ok {
		return nil, false
	}
	return preview, true
}

// SetPreview stores a preview under the given key.
func (c *ReportCache) SetPreview(key string, preview *PreviewData) {
	c.store.Set(key, preview, c.ttl)
}

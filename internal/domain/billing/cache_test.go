package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	values map[string]any
	ttls   map[string]time.Duration
}

func newMapStore() *mapStore {
	return &mapStore{values: map[string]any{}, ttls: map[string]time.Duration{}}
}

func (s *mapStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *mapStore) Set(key string, value any, ttl time.Duration) {
	s.values[key] = value
	s.ttls[key] = ttl
}

func TestCacheKey_Deterministic(t *testing.T) {
	key := CacheKey("1", "2023-01-01", "2023-01-31", FormatPreview)
	assert.Equal(t, "billing_report_1_2023-01-01_2023-01-31_preview", key)

	// Identical parameters always produce the identical key.
	assert.Equal(t, key, CacheKey("1", "2023-01-01", "2023-01-31", FormatPreview))
}

func TestCacheKey_DistinctPerParameter(t *testing.T) {
	base := CacheKey("1", "2023-01-01", "2023-01-31", FormatPreview)

	assert.NotEqual(t, base, CacheKey("2", "2023-01-01", "2023-01-31", FormatPreview))
	assert.NotEqual(t, base, CacheKey("1", "2023-01-02", "2023-01-31", FormatPreview))
	assert.NotEqual(t, base, CacheKey("1", "2023-01-01", "2023-02-28", FormatPreview))
	assert.NotEqual(t, base, CacheKey("1", "2023-01-01", "2023-01-31", FormatCSV))
}

func TestReportCache_RoundTrip(t *testing.T) {
	store := newMapStore()
	cache := NewReportCache(store, 5*time.Minute)

	key := CacheKey("1", "2023-01-01", "2023-01-31", FormatPreview)

	_, ok := cache.GetPreview(key)
	assert.False(t, ok)

	preview := &PreviewData{TotalAmount: "10.50"}
	cache.SetPreview(key, preview)

	got, ok := cache.GetPreview(key)
	require.True(t, ok)
	assert.Same(t, preview, got)
	assert.Equal(t, 5*time.Minute, store.ttls[key])
}

func TestReportCache_DefaultTTL(t *testing.T) {
	store := newMapStore()
	cache := NewReportCache(store, 0)

	cache.SetPreview("k", &PreviewData{})
	assert.Equal(t, DefaultCacheTTL, store.ttls["k"])
}

func TestReportCache_IgnoresForeignValues(t *testing.T) {
	store := newMapStore()
	store.values["k"] = "not a preview"

	cache := NewReportCache(store, time.Minute)
	_, ok := cache.GetPreview("k")
	assert.False(t, ok)
}

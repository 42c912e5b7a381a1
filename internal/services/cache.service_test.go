package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheRoundTrip(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := t0

	cache := NewTTLCache[string](60 * time.Second)
	cache.now = func() time.Time { return now }

	cache.Put(1, "summary")

	now = t0.Add(30 * time.Second)
	got, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, "summary", got)

	now = t0.Add(61 * time.Second)
	_, ok = cache.Get(1)
	assert.False(t, ok, "expired entry must be a miss")
}

func TestTTLCacheExpiryBoundary(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := t0

	cache := NewTTLCache[int](60 * time.Second)
	cache.now = func() time.Time { return now }

	cache.Put(1, 42)

	// A hit requires now - computedAt strictly below the TTL.
	now = t0.Add(60 * time.Second)
	_, ok := cache.Get(1)
	assert.False(t, ok)
}

func TestTTLCacheMissOnAbsent(t *testing.T) {
	cache := NewTTLCache[string](time.Minute)
	_, ok := cache.Get(7)
	assert.False(t, ok)
}

func TestTTLCacheReplace(t *testing.T) {
	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := t0

	cache := NewTTLCache[string](60 * time.Second)
	cache.now = func() time.Time { return now }

	cache.Put(1, "old")
	now = t0.Add(59 * time.Second)
	cache.Put(1, "new")

	// Replacement restarts the freshness window.
	now = t0.Add(90 * time.Second)
	got, ok := cache.Get(1)
	require.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestTTLCacheInvalidate(t *testing.T) {
	cache := NewTTLCache[string](time.Minute)
	cache.Put(1, "a")
	cache.Put(2, "b")

	cache.Invalidate(1)
	_, ok := cache.Get(1)
	assert.False(t, ok)

	got, ok := cache.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", got)

	cache.InvalidateAll()
	_, ok = cache.Get(2)
	assert.False(t, ok)
}

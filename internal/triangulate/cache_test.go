package triangulate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationKeyRollsOverHourly(t *testing.T) {
	at := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	key := ObservationKey("gdp_growth", "USA", at)
	assert.Equal(t, "obs:gdp_growth:USA:2026082514", key)

	sameHour := ObservationKey("gdp_growth", "USA", at.Add(20*time.Minute))
	assert.Equal(t, key, sameHour)

	nextHour := ObservationKey("gdp_growth", "USA", at.Add(time.Hour))
	assert.NotEqual(t, key, nextHour)
}

func TestMemoryCacheHitAndExpiry(t *testing.T) {
	cache := NewMemoryCache(50 * time.Millisecond)
	defer cache.Close() //nolint:errcheck

	ctx := context.Background()
	obs := &Observation{CountryCode: "USA", IndicatorCode: "gdp_growth"}

	cache.Set(ctx, "k", obs)

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, obs, got)

	time.Sleep(80 * time.Millisecond)

	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCacheMissOnUnknownKey(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Close() //nolint:errcheck

	_, ok := cache.Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestMemoryCacheCloseIsIdempotent(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}

func TestMemoryCacheSweeperEvicts(t *testing.T) {
	cache := NewMemoryCache(100 * time.Millisecond)
	defer cache.Close() //nolint:errcheck

	cache.Set(context.Background(), "k", &Observation{})
	assert.Equal(t, 1, cache.Len())

	// The sweeper runs at least once a second.
	assert.Eventually(t, func() bool {
		return cache.Len() == 0
	}, 3*time.Second, 50*time.Millisecond)
}

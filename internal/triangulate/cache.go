package triangulate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Cache stores triangulated observations for their TTL window.
type Cache interface {
	Get(ctx context.Context, key string) (*Observation, bool)
	Set(ctx context.Context, key string, obs *Observation)
}

// ObservationKey builds a cache key that rolls over hourly, matching the
// refresh cadence of the upstream sources.
func ObservationKey(indicatorCode, countryCode string, now time.Time) string {
	return fmt.Sprintf("obs:%s:%s:%s", indicatorCode, countryCode, now.UTC().Format("2006010215"))
}

// MemoryCache is an in-process TTL cache guarded by a RWMutex. A
// background sweeper evicts expired entries until Close is called.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration

	shutdownChan chan struct{}
	closeOnce    sync.Once
	wg           sync.WaitGroup
}

type memoryEntry struct {
	obs     *Observation
	expires time.Time
}

// NewMemoryCache creates a MemoryCache and starts its sweeper.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries:      make(map[string]memoryEntry),
		ttl:          ttl,
		shutdownChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.sweep()
	return c
}

func (c *MemoryCache) Get(_ context.Context, key string) (*Observation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.obs, true
}

func (c *MemoryCache) Set(_ context.Context, key string, obs *Observation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{obs: obs, expires: time.Now().Add(c.ttl)}
}

// Len reports the number of entries, expired included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the sweeper. Safe to call more than once.
func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.shutdownChan)
	})
	c.wg.Wait()
	return nil
}

func (c *MemoryCache) sweep() {
	defer c.wg.Done()

	interval := c.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.shutdownChan:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, entry := range c.entries {
				if now.After(entry.expires) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

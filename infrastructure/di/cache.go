package di

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InMemoryCache is the process-local ports.Cache behind the query bus. The
// content document is small and there is one writer, so nothing is shared
// across instances.
type InMemoryCache struct {
	mu         sync.RWMutex
	items      map[string]cacheItem
	generation atomic.Uint64
	hits       prometheus.Counter
	misses     prometheus.Counter
	now        func() time.Time
	stop       chan struct{}
	once       sync.Once
}

type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// NewInMemoryCache creates a cache that sweeps expired entries every
// cleanupEvery. hits and misses may be nil.
func NewInMemoryCache(cleanupEvery time.Duration, hits, misses prometheus.Counter) *InMemoryCache {
	cache := &InMemoryCache{
		items:  make(map[string]cacheItem),
		hits:   hits,
		misses: misses,
		now:    time.Now,
		stop:   make(chan struct{}),
	}

	go cache.cleanupExpired(cleanupEvery)

	return cache
}

// Get retrieves a value from cache
func (c *InMemoryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists || c.now().After(item.expiresAt) {
		inc(c.misses)
		return nil, false
	}

	inc(c.hits)
	return item.value, true
}

// Set stores a value in cache with TTL in seconds. A non-positive TTL
// disables caching for that entry.
func (c *InMemoryCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = cacheItem{
		value:     value,
		expiresAt: c.now().Add(time.Duration(ttl) * time.Second),
	}

	return nil
}

// Delete removes a value from cache
func (c *InMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// Clear removes all values from cache
func (c *InMemoryCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]cacheItem)
	c.generation.Add(1)
	return nil
}

// Generation counts the calls to Clear
func (c *InMemoryCache) Generation() uint64 {
	return c.generation.Load()
}

// Len returns the number of stored entries, expired ones included
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup goroutine
func (c *InMemoryCache) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *InMemoryCache) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *InMemoryCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
}

func inc(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

package cache

import (
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheMetrics tracks cache performance
type CacheMetrics struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// UnifiedCache is a typed view over go-cache. Every write refreshes the
// entry's TTL, so an entry lives as long as it keeps being used.
type UnifiedCache[T any] struct {
	mu     sync.Mutex // serializes Update calls
	store  *gocache.Cache
	ttl    time.Duration
	name   string
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// NewUnifiedCache creates a new generic cache with specified TTL and name
func NewUnifiedCache[T any](ttl time.Duration, name string, logger *zap.Logger) *UnifiedCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &UnifiedCache[T]{
		store:  gocache.New(ttl, ttl/2),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
	c.store.OnEvicted(func(key string, _ interface{}) {
		c.logger.Debug("Cache evicted",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
	})
	return c
}

// Set stores an item in the cache with the given key
func (c *UnifiedCache[T]) Set(key string, value T) {
	c.store.Set(key, value, gocache.DefaultExpiration)
	c.sets.Add(1)

	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

// Get retrieves an item from the cache
func (c *UnifiedCache[T]) Get(key string) (T, bool) {
	var zero T

	raw, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		c.logger.Debug("Cache miss",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	value, ok := raw.(T)
	if !ok {
		c.misses.Add(1)
		c.logger.Warn("Cache entry has unexpected type",
			zap.String("cache", c.name),
			zap.String("key", key),
		)
		return zero, false
	}

	c.hits.Add(1)
	return value, true
}

// Update loads the entry for key (or init() when absent), passes it to fn and
// stores whatever fn returns, even when fn also returns an error. Calls are
// serialized so concurrent requests for the same key never interleave.
func (c *UnifiedCache[T]) Update(key string, init func() T, fn func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, found := c.Get(key)
	if !found {
		current = init()
	}

	next, err := fn(current)
	c.Set(key, next)
	return next, err
}

// Touch restarts the TTL of an existing entry without changing it. It reports
// whether the entry was present.
func (c *UnifiedCache[T]) Touch(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, found := c.store.Get(key)
	if !found {
		return false
	}
	c.store.Set(key, current, gocache.DefaultExpiration)
	return true
}

// Delete removes an item from the cache
func (c *UnifiedCache[T]) Delete(key string) {
	c.store.Delete(key)
	c.logger.Debug("Cache delete",
		zap.String("cache", c.name),
		zap.String("key", key),
	)
}

// Clear removes all items from the cache
func (c *UnifiedCache[T]) Clear() {
	c.store.Flush()
	c.logger.Info("Cache cleared",
		zap.String("cache", c.name),
	)
}

// GetMetrics returns current cache metrics
func (c *UnifiedCache[T]) GetMetrics() CacheMetrics {
	return CacheMetrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
	}
}

// Size returns the number of items in the cache, expired ones included until
// the janitor runs.
func (c *UnifiedCache[T]) Size() int {
	return c.store.ItemCount()
}

func (c *UnifiedCache[T]) Name() string {
	return c.name
}

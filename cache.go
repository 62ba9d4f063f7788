package units

import (
	"context"
	"sync"
)

type cacheContextKey struct{}

// Direction identifies which way a conversion crossed the base system.
type Direction string

const (
	// ToBase marks caller-units → base conversions.
	ToBase Direction = "to-base"
	// FromBase marks base → caller-units conversions.
	FromBase Direction = "from-base"
)

// CacheKey identifies one memoized conversion result. Conversions are pure
// for a fixed key, which is what makes the memo sound.
type CacheKey struct {
	Value     float64
	Dimension string
	System    string
	Direction Direction
}

// conversionCache is the per-call-chain memo. Chains never share an
// instance; the mutex only guards sub-calls of one chain racing each other.
type conversionCache struct {
	mu      sync.RWMutex
	entries map[CacheKey]float64
}

func newConversionCache() *conversionCache {
	return &conversionCache{entries: map[CacheKey]float64{}}
}

func (c *conversionCache) lookup(key CacheKey) (float64, bool) {
	if c == nil {
		return 0, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *conversionCache) store(key CacheKey, value float64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

func cacheFrom(ctx context.Context) *conversionCache {
	if ctx == nil {
		return nil
	}
	cache, _ := ctx.Value(cacheContextKey{}).(*conversionCache)
	return cache
}

// CacheEntries returns a copy of the chain's conversion memo, or nil when
// ctx carries no scope.
func CacheEntries(ctx context.Context) map[CacheKey]float64 {
	cache := cacheFrom(ctx)
	if cache == nil {
		return nil
	}
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	out := make(map[CacheKey]float64, len(cache.entries))
	for key, value := range cache.entries {
		out[key] = value
	}
	return out
}

// ReplaceCache swaps the chain's memo contents for entries. The map is
// copied; the caller keeps ownership of its argument.
func ReplaceCache(ctx context.Context, entries map[CacheKey]float64) {
	cache := cacheFrom(ctx)
	if cache == nil {
		return
	}
	replaced := make(map[CacheKey]float64, len(entries))
	for key, value := range entries {
		replaced[key] = value
	}
	cache.mu.Lock()
	cache.entries = replaced
	cache.mu.Unlock()
}

// ClearCache empties the chain's memo. Request boundaries call this before
// converting so no entries from an unrelated chain are ever reused.
func ClearCache(ctx context.Context) {
	cache := cacheFrom(ctx)
	if cache == nil {
		return
	}
	cache.mu.Lock()
	cache.entries = map[CacheKey]float64{}
	cache.mu.Unlock()
}

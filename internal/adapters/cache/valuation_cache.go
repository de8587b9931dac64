package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
)

// RistrettoValuationCache memoizes rounded pair valuations.
type RistrettoValuationCache struct {
	cache *ristretto.Cache
}

func NewValuationCache(maxItems int64) (*RistrettoValuationCache, error) {
	if maxItems <= 0 {
		maxItems = 1024
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create valuation cache failed: %w", err)
	}
	return &RistrettoValuationCache{cache: c}, nil
}

func (c *RistrettoValuationCache) Get(key string) (float64, bool) {
	if v, ok := c.cache.Get(key); ok {
		value, ok := v.(float64)
		return value, ok
	}
	return 0, false
}

func (c *RistrettoValuationCache) Set(key string, value float64) {
	c.cache.Set(key, value, 1)
}

// Clear drops every memoized valuation, called whenever a new table is swapped in.
func (c *RistrettoValuationCache) Clear() { c.cache.Clear() }

func (c *RistrettoValuationCache) Close() { c.cache.Close() }

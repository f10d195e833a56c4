// Package cache provides an in-process LRU cache for query results, with
// singleflight collapsing of concurrent identical lookups.
package cache

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Query caches computed values of type T keyed by query key. Entries are
// evicted least-recently-used once the cache is full; Purge drops everything
// after an index mutation.
type Query[T any] struct {
	lru    *lru.Cache[string, T]
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cache holding at most size entries.
func New[T any](size int) (*Query[T], error) {
	c, err := lru.New[string, T](size)
	if err != nil {
		return nil, fmt.Errorf("creating query cache: %w", err)
	}
	return &Query[T]{lru: c}, nil
}

// GetOrCompute returns the cached value for key, or runs computeFn and caches
// its result. Concurrent calls for the same key share a single computation.
// The second return value reports whether the value came from the cache.
func (c *Query[T]) GetOrCompute(key string, computeFn func() (T, error)) (T, bool, error) {
	if v, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return v, true, nil
	}
	c.misses.Add(1)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.lru.Get(key); ok {
			return v, nil
		}
		v, err := computeFn()
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v.(T), false, nil
}

// Purge drops every cached entry.
func (c *Query[T]) Purge() {
	c.lru.Purge()
}

// Stats returns hit and miss counts since construction.
func (c *Query[T]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Key builds a cache key from the ordered query terms and the result limit.
// Term order and repetition are part of the key: both change what a search
// returns.
func Key(terms []string, limit int) string {
	raw := fmt.Sprintf("%s|limit=%d", strings.Join(terms, " "), limit)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("q:%x", sum[:16])
}

// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache memoizes compiled layouts. Entries are evicted at random once
// the cache is full.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultSize is the capacity of a Cache with a zero MaxSize.
const DefaultSize = 1 << 10

// Cache maps keys to values computed on first use.
//
// Its zero value is ready to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize bounds the total size of the cached values. If it is zero,
	// DefaultSize is used. Values implementing Sizer report their own size,
	// all others count as 1.
	//
	// MaxSize must not change while the cache is in use.
	MaxSize int64

	mu   sync.RWMutex
	m    map[K]V
	size int64

	hits, misses atomic.Int64
}

// Get returns the value for k, calling fill to compute it if it is missing.
// fill may be called concurrently for the same key; only one result is kept.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	c.size += sizeOf(nv)
	// Map iteration order is random, which makes for random replacement.
	for ek := range c.m {
		if c.size <= c.limit() {
			break
		}
		if ek != k {
			c.evictLocked(ek)
		}
	}
	return nv
}

func (c *Cache[K, V]) limit() int64 {
	if c.MaxSize == 0 {
		return DefaultSize
	}
	return c.MaxSize
}

// Evict removes k from the cache, if present.
func (c *Cache[K, V]) Evict(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictLocked(k)
}

// evictLocked removes k. c.mu must be held for writing.
func (c *Cache[K, V]) evictLocked(k K) {
	if v, ok := c.m[k]; ok {
		delete(c.m, k)
		c.size -= sizeOf(v)
	}
}

// Flush removes all entries and resets the statistics.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
	c.size = 0
	c.hits.Store(0)
	c.misses.Store(0)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Stats reports how many calls to Get found their key, and how many had to
// call fill.
func (c *Cache[K, V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Sizer is implemented by values which report their own size. The size must
// be positive and must not change.
type Sizer interface {
	Size() int64
}

func sizeOf[V any](v V) int64 {
	if s, ok := any(v).(Sizer); ok {
		return s.Size()
	}
	return 1
}

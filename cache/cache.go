// Copyright (c) 2025 Radio Calico.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultMaxEntries bounds the cache so it can never become a memory sink.
const DefaultMaxEntries = 100

// Cache is a small bounded TTL memo for read endpoints. It is best-effort
// only and never the system of record: every write path that a cached read
// shadows must invalidate synchronously. A nil *Cache is valid and disables
// caching entirely.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	maxEntries int
	now        func() time.Time
}

type entry struct {
	value    any
	storedAt time.Time
}

func New(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		entries:    make(map[string]entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Key builds a cache key from an operation name and its arguments.
func Key(op string, args ...string) string {
	return op + ":" + strings.Join(args, ":")
}

// Get returns the cached value for key if it is younger than maxAge.
// Expired entries are removed on access.
func (c *Cache) Get(key string, maxAge time.Duration) (any, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) >= maxAge {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value, evicting the oldest entry once the bound is reached.
func (c *Cache) Set(key string, value any) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, storedAt: c.now()}

	if len(c.entries) > c.maxEntries {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.storedAt.Before(oldest) {
				oldestKey = k
				oldest = e.storedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeletePrefix removes every key starting with prefix. Used to clear all
// cached views of one song regardless of fingerprint.
func (c *Cache) DeletePrefix(prefix string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

// Len reports the current entry count.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

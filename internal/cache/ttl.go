// Package cache provides the process-scoped, time-bounded memoization tier.
package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Tests inject a fake clock.
type Clock func() time.Time

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is an in-memory map whose entries expire a fixed duration after they
// were stored. Expired entries are dropped on lookup, by Prune, and by a
// sweep that Set runs at most once per freshness window.
type TTL[K comparable, V any] struct {
	entries   map[K]entry[V]
	now       Clock
	nextSweep time.Time
	ttl       time.Duration
	mu        sync.Mutex
}

// NewTTL creates a cache with the given freshness window. A nil clock uses
// time.Now.
func NewTTL[K comparable, V any](ttl time.Duration, clock Clock) *TTL[K, V] {
	if clock == nil {
		clock = time.Now
	}
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		now:     clock,
		ttl:     ttl,
	}
}

// Get returns the value for key if it is still fresh.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.expired(e) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, replacing any previous entry and restarting
// its freshness window.
func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !now.Before(c.nextSweep) {
		c.prune()
		c.nextSweep = now.Add(c.ttl)
	}
	c.entries[key] = entry[V]{value: value, expiresAt: now.Add(c.ttl)}
}

// Delete removes key.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops every entry.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]entry[V])
}

// Prune removes expired entries and returns how many were removed.
func (c *TTL[K, V]) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prune()
}

func (c *TTL[K, V]) prune() int {
	removed := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, fresh or not.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// TTL returns the freshness window.
func (c *TTL[K, V]) TTL() time.Duration {
	return c.ttl
}

func (c *TTL[K, V]) expired(e entry[V]) bool {
	return !c.now().Before(e.expiresAt)
}

package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"foresight/pkg/platform/sentinel"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// DefaultMaxEntries caps an InMemory cache built by NewInMemory.
const DefaultMaxEntries = 4096

// InMemory is a process-local TTL cache. It is safe for concurrent use.
// Expired entries are dropped on read and pruned on write; when the cache is
// full the entry closest to expiry is evicted.
type InMemory struct {
	mu         sync.RWMutex
	entries    map[string]entry
	maxEntries int
	now        func() time.Time
}

// NewInMemory returns an empty cache holding at most DefaultMaxEntries.
func NewInMemory() *InMemory {
	return &InMemory{entries: make(map[string]entry), maxEntries: DefaultMaxEntries, now: time.Now}
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Get returns a copy of the stored value. Expired entries read as misses and
// are removed.
func (c *InMemory) Get(_ context.Context, key string) ([]byte, error) {
	now := c.now()
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && e.expired(now) {
		c.mu.Lock()
		if cur, still := c.entries[key]; still && cur.expired(now) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf("cache key %q: %w", key, sentinel.ErrNotFound)
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

// Set stores a copy of value. A non-positive ttl never expires.
func (c *InMemory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	now := c.now()
	e := entry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.pruneLocked(now)
	}
	c.entries[key] = e
	return nil
}

// pruneLocked drops expired entries and, if the cache is still full, evicts
// the entry expiring soonest. Entries without expiry go last.
func (c *InMemory) pruneLocked(now time.Time) {
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.maxEntries {
		return
	}
	var (
		victim  string
		soonest time.Time
		found   bool
	)
	for k, e := range c.entries {
		switch {
		case !found:
			victim, soonest, found = k, e.expiresAt, true
		case soonest.IsZero() && !e.expiresAt.IsZero():
			victim, soonest = k, e.expiresAt
		case !e.expiresAt.IsZero() && e.expiresAt.Before(soonest):
			victim, soonest = k, e.expiresAt
		}
	}
	if found {
		delete(c.entries, victim)
	}
}

// Health always succeeds.
func (c *InMemory) Health(context.Context) error {
	return nil
}

// Len reports the number of stored entries, including expired ones not yet
// pruned.
func (c *InMemory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

package middleware

import (
	"sync"
	"time"
)

// DefaultIdempotencyMaxEntries bounds the replay cache so a burst of unique
// keys cannot grow it without limit.
const DefaultIdempotencyMaxEntries = 10000

// IdempotencyCache holds the responses replayed for repeated Idempotency-Key
// requests. Entries expire after the TTL; when full, the oldest entry is
// evicted first.
type IdempotencyCache struct {
	mu         sync.RWMutex
	items      map[string]*cachedResponse
	order      []string
	ttl        time.Duration
	maxEntries int
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewIdempotencyCache starts a cache whose sweeper runs until Stop is called.
func NewIdempotencyCache(ttl time.Duration, maxEntries int) *IdempotencyCache {
	if maxEntries <= 0 {
		maxEntries = DefaultIdempotencyMaxEntries
	}
	c := &IdempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		stop:       make(chan struct{}),
	}
	go c.sweep(sweepInterval(ttl))
	return c
}

func sweepInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > time.Minute {
		return time.Minute
	}
	return ttl
}

// Get returns the unexpired response stored under key.
func (c *IdempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.Timestamp) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores resp under key, stamping it with the current time.
func (c *IdempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = time.Now()
	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = resp

	for len(c.items) > c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
}

// Len returns the number of stored responses, expired ones included.
func (c *IdempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the sweeper. It is safe to call more than once.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *IdempotencyCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *IdempotencyCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	kept := c.order[:0]
	for _, key := range c.order {
		resp, ok := c.items[key]
		if !ok {
			continue
		}
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
			continue
		}
		kept = append(kept, key)
	}
	c.order = kept
}

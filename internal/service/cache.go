// Package service contains the business logic of the flower shop.
package service

import (
	"hash/fnv"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/metrics"
	"github.com/AJLandry1000000000/flower-shop/internal/service/cache"
)

// ShardedCache spreads breakdowns across independently locked shards.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint32
}

// NewShardedCache creates a cache holding roughly capacity entries split over
// numShards shards. numShards is rounded up to a power of 2; zero or negative
// selects 16.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, n)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &ShardedCache{
		shards:    shards,
		shardMask: uint32(n - 1),
	}
}

func (sc *ShardedCache) shard(key cache.Key) *ttlCache {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key.ProductCode))
	_, _ = h.Write([]byte(strconv.Itoa(key.Quantity)))
	return sc.shards[h.Sum32()&sc.shardMask]
}

// Get retrieves a breakdown from the owning shard.
func (sc *ShardedCache) Get(key cache.Key) (model.Breakdown, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a breakdown in the owning shard.
func (sc *ShardedCache) Set(key cache.Key, value model.Breakdown) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(key cache.Key) {
	sc.shard(key).Invalidate(key)
}

// InvalidateProduct removes every entry of a product. Entries of one product
// are spread over all shards, so each shard is scanned.
func (sc *ShardedCache) InvalidateProduct(code string) {
	for _, s := range sc.shards {
		s.InvalidateProduct(code)
	}
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down the cleanup loops of all shards.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after ttl.
type ttlCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[cache.Key]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopOnce  sync.Once
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry struct {
	key       cache.Key
	value     model.Breakdown
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newTTLCache creates the cache and starts its background expiry sweep.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[cache.Key]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Stop ends the background sweep. Safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Get returns a live entry and marks it most recently used.
func (c *ttlCache) Get(key cache.Key) (model.Breakdown, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.Breakdown{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.Breakdown{}, false
	}

	c.moveToFront(entry)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or refreshes an entry, evicting the least recently used one when
// the cache is over capacity.
func (c *ttlCache) Set(key cache.Key, value model.Breakdown) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes a specific key.
func (c *ttlCache) Invalidate(key cache.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// InvalidateProduct removes all keys of one product.
func (c *ttlCache) InvalidateProduct(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.items {
		if key.ProductCode == code {
			c.removeEntry(entry)
		}
	}
	metrics.RecordCacheOperation("invalidate_product", "success")
}

// Clear removes all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[cache.Key]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}

func (c *ttlCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *ttlCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache) unlink(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

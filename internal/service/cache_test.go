package service

import (
	"sync"
	"testing"
	"time"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/service/cache"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func key(code string, quantity int) cache.Key {
	return cache.Key{ProductCode: code, Quantity: quantity}
}

func breakdown(code string, quantity, bundles int) model.Breakdown {
	return model.Breakdown{
		ProductCode:       code,
		RequestedQuantity: quantity,
		TotalBundles:      bundles,
		TotalCost:         decimal.Zero,
	}
}

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setupCache    func() *ttlCache
		key           cache.Key
		expectedValue model.Breakdown
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set(key("R12", 15), breakdown("R12", 15, 2))
				return c
			},
			key:           key("R12", 15),
			expectedValue: breakdown("R12", 15, 2),
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache {
				return newTTLCache(10, time.Minute)
			},
			key:           key("R12", 999),
			expectedFound: false,
		},
		{
			name: "same quantity of another product is a different key",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set(key("R12", 15), breakdown("R12", 15, 2))
				return c
			},
			key:           key("L09", 15),
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, 50*time.Millisecond)
				c.Set(key("R12", 15), breakdown("R12", 15, 2))
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           key("R12", 15),
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			defer c.Stop()

			value, found := c.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.expectedValue, value)
			}
		})
	}
}

func TestTTLCache_Set(t *testing.T) {
	type op struct {
		key   cache.Key
		value model.Breakdown
	}

	tests := []struct {
		name       string
		capacity   int
		operations []op
		validate   func(*testing.T, *ttlCache)
	}{
		{
			name:     "evicts LRU when at capacity",
			capacity: 2,
			operations: []op{
				{key("R12", 1), breakdown("R12", 1, 0)},
				{key("R12", 2), breakdown("R12", 2, 0)},
				{key("R12", 3), breakdown("R12", 3, 0)},
			},
			validate: func(t *testing.T, c *ttlCache) {
				_, ok1 := c.Get(key("R12", 1))
				_, ok2 := c.Get(key("R12", 2))
				_, ok3 := c.Get(key("R12", 3))
				assert.False(t, ok1, "first entry evicted")
				assert.True(t, ok2)
				assert.True(t, ok3)
				assert.Equal(t, int64(1), c.Metrics().Evictions)
			},
		},
		{
			name:     "updates existing entry",
			capacity: 10,
			operations: []op{
				{key("T58", 13), breakdown("T58", 13, 4)},
				{key("T58", 13), breakdown("T58", 13, 3)},
			},
			validate: func(t *testing.T, c *ttlCache) {
				value, ok := c.Get(key("T58", 13))
				assert.True(t, ok)
				assert.Equal(t, 3, value.TotalBundles)
				assert.Equal(t, 1, c.Metrics().Size, "should still have only one entry")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTTLCache(tt.capacity, time.Minute)
			defer c.Stop()

			for _, o := range tt.operations {
				c.Set(o.key, o.value)
			}
			if tt.validate != nil {
				tt.validate(t, c)
			}
		})
	}
}

func TestTTLCache_MoveToFront(t *testing.T) {
	c := newTTLCache(3, time.Minute)
	defer c.Stop()

	c.Set(key("L09", 1), breakdown("L09", 1, 0))
	c.Set(key("L09", 2), breakdown("L09", 2, 0))
	c.Set(key("L09", 3), breakdown("L09", 3, 0))

	// touching 1 leaves 2 as least recently used
	c.Get(key("L09", 1))
	c.Set(key("L09", 4), breakdown("L09", 4, 0))

	_, ok1 := c.Get(key("L09", 1))
	_, ok2 := c.Get(key("L09", 2))
	_, ok3 := c.Get(key("L09", 3))
	_, ok4 := c.Get(key("L09", 4))

	assert.True(t, ok1, "entry 1 should still exist (was accessed)")
	assert.False(t, ok2, "entry 2 should be evicted (was LRU)")
	assert.True(t, ok3)
	assert.True(t, ok4)
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(key("R12", 10), breakdown("R12", 10, 1))
	c.Set(key("R12", 15), breakdown("R12", 15, 2))

	c.Invalidate(key("R12", 10))
	c.Invalidate(key("R12", 999))

	_, ok := c.Get(key("R12", 10))
	assert.False(t, ok)
	_, ok = c.Get(key("R12", 15))
	assert.True(t, ok)
}

func TestTTLCache_InvalidateProduct(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(key("R12", 10), breakdown("R12", 10, 1))
	c.Set(key("R12", 15), breakdown("R12", 15, 2))
	c.Set(key("L09", 15), breakdown("L09", 15, 2))

	c.InvalidateProduct("R12")

	_, ok := c.Get(key("R12", 10))
	assert.False(t, ok)
	_, ok = c.Get(key("R12", 15))
	assert.False(t, ok)
	_, ok = c.Get(key("L09", 15))
	assert.True(t, ok)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_Clear(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(key("R12", 10), breakdown("R12", 10, 1))
	c.Get(key("R12", 10))
	c.Clear()

	_, ok := c.Get(key("R12", 10))
	assert.False(t, ok)
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
}

func TestTTLCache_Metrics(t *testing.T) {
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(key("R12", 10), breakdown("R12", 10, 1))
	c.Get(key("R12", 10))
	c.Get(key("R12", 20))
	c.Set(key("R12", 20), breakdown("R12", 20, 2))
	c.Set(key("R12", 30), breakdown("R12", 30, 3))

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 3, m.Size)
	assert.Equal(t, 10, m.Capacity)
}

func TestTTLCache_RemoveExpired(t *testing.T) {
	c := newTTLCache(10, 50*time.Millisecond)
	defer c.Stop()

	c.Set(key("R12", 10), breakdown("R12", 10, 1))
	c.Set(key("R12", 15), breakdown("R12", 15, 2))

	time.Sleep(100 * time.Millisecond)
	c.removeExpired()

	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_Stop(t *testing.T) {
	c := newTTLCache(10, time.Minute)

	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_ImplementsInterface(t *testing.T) {
	var _ cache.Cache = (*ttlCache)(nil)
	var _ cache.CacheWithMetrics = (*ttlCache)(nil)
	var _ cache.CacheWithMetrics = (*ShardedCache)(nil)
}

func TestTTLCache_Concurrency(t *testing.T) {
	c := newTTLCache(100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				k := key("R12", worker*100+j)
				c.Set(k, breakdown("R12", k.Quantity, 1))
				c.Get(k)
				if j%3 == 0 {
					c.InvalidateProduct("L09")
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, c.Metrics().Size)
}

// Package cache defines the contract of the breakdown cache.
package cache

import (
	"strconv"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// Key identifies a cached breakdown.
type Key struct {
	ProductCode string
	Quantity    int
}

// String renders the key as CODE:QUANTITY.
func (k Key) String() string {
	return k.ProductCode + ":" + strconv.Itoa(k.Quantity)
}

// Cache defines the interface for cache operations.
type Cache interface {
	Get(key Key) (model.Breakdown, bool)
	Set(key Key, value model.Breakdown)
	Invalidate(key Key)
	// InvalidateProduct drops every entry of one product.
	InvalidateProduct(code string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

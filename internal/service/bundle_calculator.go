package service

import (
	"time"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/metrics"
	"github.com/AJLandry1000000000/flower-shop/internal/service/cache"
)

// BundleCalculator defines the interface for bundle calculation operations.
type BundleCalculator interface {
	Calculate(product model.Product, quantity int) (model.Breakdown, error)
	// InvalidateProduct drops cached results of one product (its sizes or prices changed)
	InvalidateProduct(code string)
	InvalidateCache()
}

// Option configures a BundleCalculatorService.
type Option func(*BundleCalculatorService)

// BundleCalculatorService implements BundleCalculator on top of MinimizeBundles,
// optionally memoizing results per product and quantity.
type BundleCalculatorService struct {
	cache cache.Cache
}

// NewBundleCalculatorService creates a new BundleCalculatorService with the given options.
func NewBundleCalculatorService(opts ...Option) *BundleCalculatorService {
	s := &BundleCalculatorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *BundleCalculatorService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *BundleCalculatorService) {
		s.cache = c
	}
}

// Calculate returns the fewest-bundle breakdown of quantity for product.
// Cached results are keyed by product code, so callers must invalidate the
// product whenever its descriptor changes. Errors are never cached.
func (s *BundleCalculatorService) Calculate(product model.Product, quantity int) (model.Breakdown, error) {
	k := cache.Key{ProductCode: product.Code, Quantity: quantity}
	if s.cache != nil {
		if b, ok := s.cache.Get(k); ok {
			return b, nil
		}
	}

	start := time.Now()
	b, err := MinimizeBundles(product, quantity)
	switch {
	case err != nil:
		metrics.RecordBundleCalculation(time.Since(start), metrics.StatusError)
		return model.Breakdown{}, err
	case b.Feasible():
		metrics.RecordBundleCalculation(time.Since(start), metrics.StatusFeasible)
	default:
		metrics.RecordBundleCalculation(time.Since(start), metrics.StatusNoSolution)
	}

	if s.cache != nil {
		s.cache.Set(k, b)
		if cm, ok := s.cache.(cache.CacheWithMetrics); ok {
			m := cm.Metrics()
			metrics.UpdateCacheMetrics(m.Size, m.Capacity)
		}
	}

	return b, nil
}

// InvalidateProduct drops every cached result of the product.
func (s *BundleCalculatorService) InvalidateProduct(code string) {
	if s.cache != nil {
		s.cache.InvalidateProduct(code)
	}
}

// InvalidateCache clears the calculation cache.
func (s *BundleCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background resources.
func (s *BundleCalculatorService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

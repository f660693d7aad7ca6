package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/circuitbreaker"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// IsStoreFailure reports whether err means the store itself misbehaved.
// Lookups of unknown products are ordinary answers and must not trip a breaker.
func IsStoreFailure(err error) bool {
	return !errors.Is(err, ErrProductNotFound) && !errors.Is(err, context.Canceled)
}

// ProductRepositoryWithCircuitBreaker wraps a ProductRepository with circuit breaker protection.
type ProductRepositoryWithCircuitBreaker struct {
	repo           ProductRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductRepositoryWithCircuitBreaker(repo ProductRepository, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByCode returns a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	var result *model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByCode(ctx, code)
		return cbErr
	})
	return result, err
}

// List returns products with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]model.Product, error) {
	var result []model.Product
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// Upsert stores a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Upsert(ctx context.Context, product model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, product)
	})
}

// Delete removes a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Delete(ctx context.Context, code string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, code)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// OrderHistoryRepositoryWithCircuitBreaker wraps an OrderHistoryRepository with circuit breaker protection.
type OrderHistoryRepositoryWithCircuitBreaker struct {
	repo           OrderHistoryRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrderHistoryRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrderHistoryRepositoryWithCircuitBreaker(repo OrderHistoryRepository, cb *circuitbreaker.CircuitBreaker) *OrderHistoryRepositoryWithCircuitBreaker {
	return &OrderHistoryRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a record. While the circuit is open the record is dropped,
// since history must never fail an order.
func (r *OrderHistoryRepositoryWithCircuitBreaker) Insert(ctx context.Context, record *model.OrderRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, record)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// InsertMany stores records, dropping them while the circuit is open.
func (r *OrderHistoryRepositoryWithCircuitBreaker) InsertMany(ctx context.Context, records []*model.OrderRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.InsertMany(ctx, records)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Find queries records with circuit breaker protection.
func (r *OrderHistoryRepositoryWithCircuitBreaker) Find(ctx context.Context, q model.HistoryQuery) ([]model.OrderRecord, error) {
	var result []model.OrderRecord
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Find(ctx, q)
		return cbErr
	})
	return result, err
}

// Count counts records with circuit breaker protection.
func (r *OrderHistoryRepositoryWithCircuitBreaker) Count(ctx context.Context, q model.HistoryQuery) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, q)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrderHistoryRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

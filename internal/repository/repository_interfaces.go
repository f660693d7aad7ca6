// Package repository provides the product catalog and order history stores.
package repository

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

var (
	// ErrProductNotFound is returned when no product has the requested code.
	ErrProductNotFound = errors.New("product not found")
	// ErrStoreNotConfigured is returned when a store was selected but not wired.
	ErrStoreNotConfigured = errors.New("store not configured")
)

// ProductRepository defines the interface for product catalog operations.
// Implementations store products normalized and return copies.
type ProductRepository interface {
	GetByCode(ctx context.Context, code string) (*model.Product, error)
	List(ctx context.Context, limit int) ([]model.Product, error)
	Upsert(ctx context.Context, product model.Product) error
	Delete(ctx context.Context, code string) error
}

// OrderHistoryRepository defines the interface for order history operations.
type OrderHistoryRepository interface {
	Insert(ctx context.Context, record *model.OrderRecord) error
	InsertMany(ctx context.Context, records []*model.OrderRecord) error
	Find(ctx context.Context, query model.HistoryQuery) ([]model.OrderRecord, error)
	Count(ctx context.Context, query model.HistoryQuery) (int64, error)
}

// HealthChecker is implemented by stores backed by a remote server.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

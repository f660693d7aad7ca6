package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// MemoryProductRepository keeps the catalog in process, guarded by a RWMutex.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

// NewMemoryProductRepository creates an empty in-memory catalog.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]model.Product),
	}
}

// GetByCode returns a copy of the product or ErrProductNotFound.
func (r *MemoryProductRepository) GetByCode(_ context.Context, code string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[code]
	if !ok {
		return nil, errors.Wrapf(ErrProductNotFound, "code %q", code)
	}
	out := p.Normalized()
	return &out, nil
}

// List returns products ordered by code. A limit of zero or less returns all.
func (r *MemoryProductRepository) List(_ context.Context, limit int) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.Normalized())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Upsert stores a normalized copy of the product.
func (r *MemoryProductRepository) Upsert(_ context.Context, product model.Product) error {
	p := product.Normalized()

	r.mu.Lock()
	r.products[p.Code] = p
	r.mu.Unlock()

	return nil
}

// Delete removes a product or returns ErrProductNotFound.
func (r *MemoryProductRepository) Delete(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[code]; !ok {
		return errors.Wrapf(ErrProductNotFound, "code %q", code)
	}
	delete(r.products, code)
	return nil
}

//go:build !integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AJLandry1000000000/flower-shop/internal/circuitbreaker"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

var errDown = errors.New("connection refused")

// downProductRepository fails every call like an unreachable server.
type downProductRepository struct{ calls int }

func (r *downProductRepository) GetByCode(context.Context, string) (*model.Product, error) {
	r.calls++
	return nil, errDown
}

func (r *downProductRepository) List(context.Context, int) ([]model.Product, error) {
	r.calls++
	return nil, errDown
}

func (r *downProductRepository) Upsert(context.Context, model.Product) error {
	r.calls++
	return errDown
}

func (r *downProductRepository) Delete(context.Context, string) error {
	r.calls++
	return errDown
}

// downHistoryRepository fails every call like an unreachable server.
type downHistoryRepository struct{ calls int }

func (r *downHistoryRepository) Insert(context.Context, *model.OrderRecord) error {
	r.calls++
	return errDown
}

func (r *downHistoryRepository) InsertMany(context.Context, []*model.OrderRecord) error {
	r.calls++
	return errDown
}

func (r *downHistoryRepository) Find(context.Context, model.HistoryQuery) ([]model.OrderRecord, error) {
	r.calls++
	return nil, errDown
}

func (r *downHistoryRepository) Count(context.Context, model.HistoryQuery) (int64, error) {
	r.calls++
	return 0, errDown
}

func breaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
		IsFailure:        IsStoreFailure,
	})
}

func TestProductRepositoryWithCircuitBreaker(t *testing.T) {
	testProductRepository(t, NewProductRepositoryWithCircuitBreaker(NewMemoryProductRepository(), breaker()))
}

func TestProductRepositoryWithCircuitBreaker_NotFoundKeepsCircuitClosed(t *testing.T) {
	cb := breaker()
	repo := NewProductRepositoryWithCircuitBreaker(NewMemoryProductRepository(), cb)

	for i := 0; i < 5; i++ {
		_, err := repo.GetByCode(context.Background(), "NOPE")
		assert.True(t, errors.Is(err, ErrProductNotFound))
	}

	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
	assert.Same(t, cb, repo.GetCircuitBreaker())
}

func TestProductRepositoryWithCircuitBreaker_OpensOnStoreFailures(t *testing.T) {
	down := &downProductRepository{}
	repo := NewProductRepositoryWithCircuitBreaker(down, breaker())
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name:    "first failure passes through",
			call:    func() error { _, err := repo.GetByCode(ctx, "R12"); return err },
			wantErr: errDown,
		},
		{
			name:    "second failure opens the circuit",
			call:    func() error { _, err := repo.List(ctx, 0); return err },
			wantErr: errDown,
		},
		{
			name:    "open circuit rejects upsert",
			call:    func() error { return repo.Upsert(ctx, model.Product{Code: "R12"}) },
			wantErr: circuitbreaker.ErrCircuitOpen,
		},
		{
			name:    "open circuit rejects delete",
			call:    func() error { return repo.Delete(ctx, "R12") },
			wantErr: circuitbreaker.ErrCircuitOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.call(), tt.wantErr))
		})
	}
	assert.Equal(t, 2, down.calls)
}

func TestOrderHistoryRepositoryWithCircuitBreaker(t *testing.T) {
	down := &downHistoryRepository{}
	cb := breaker()
	repo := NewOrderHistoryRepositoryWithCircuitBreaker(down, cb)
	ctx := context.Background()

	err := repo.Insert(ctx, &model.OrderRecord{ProductCode: "R12"})
	assert.True(t, errors.Is(err, errDown))
	err = repo.InsertMany(ctx, []*model.OrderRecord{{ProductCode: "R12"}})
	assert.True(t, errors.Is(err, errDown))
	require.Equal(t, circuitbreaker.StateOpen, cb.State())

	// writes are dropped silently while open, reads report the outage
	assert.NoError(t, repo.Insert(ctx, &model.OrderRecord{ProductCode: "R12"}))
	assert.NoError(t, repo.InsertMany(ctx, []*model.OrderRecord{{ProductCode: "R12"}}))

	_, err = repo.Find(ctx, model.HistoryQuery{})
	assert.True(t, errors.Is(err, circuitbreaker.ErrCircuitOpen))
	_, err = repo.Count(ctx, model.HistoryQuery{})
	assert.True(t, errors.Is(err, circuitbreaker.ErrCircuitOpen))

	assert.Equal(t, 2, down.calls)
	assert.Same(t, cb, repo.GetCircuitBreaker())
}

func TestIsStoreFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "not found", err: errors.Wrap(ErrProductNotFound, "code \"X\""), want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "driver error", err: errDown, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStoreFailure(tt.err))
		})
	}
}

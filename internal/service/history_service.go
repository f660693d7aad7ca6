package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/repository"
)

const (
	// DefaultHistoryLimit is used when a history query sets no limit.
	DefaultHistoryLimit = 50
	// MaxHistoryLimit caps a single history page.
	MaxHistoryLimit = 500
)

// HistoryService defines the interface for order history operations.
type HistoryService interface {
	// Record stores a single order record.
	Record(ctx context.Context, record *model.OrderRecord) error

	// RecordMany stores multiple order records in bulk.
	RecordMany(ctx context.Context, records []*model.OrderRecord) error

	// Query retrieves order records matching the query, newest first.
	Query(ctx context.Context, query model.HistoryQuery) ([]model.OrderRecord, error)

	// Count returns the number of order records matching the query.
	Count(ctx context.Context, query model.HistoryQuery) (int64, error)
}

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	repo repository.OrderHistoryRepository
}

// NewHistoryService creates a new order history service.
func NewHistoryService(repo repository.OrderHistoryRepository) HistoryService {
	return &HistoryServiceImpl{
		repo: repo,
	}
}

// Record stores a single order record, assigning an id when it has none.
func (s *HistoryServiceImpl) Record(ctx context.Context, record *model.OrderRecord) error {
	if s.repo == nil {
		return repository.ErrStoreNotConfigured
	}
	prepareRecord(record)
	return s.repo.Insert(ctx, record)
}

// RecordMany stores multiple order records in bulk.
func (s *HistoryServiceImpl) RecordMany(ctx context.Context, records []*model.OrderRecord) error {
	if len(records) == 0 {
		return nil
	}
	if s.repo == nil {
		return repository.ErrStoreNotConfigured
	}
	for _, r := range records {
		prepareRecord(r)
	}
	return s.repo.InsertMany(ctx, records)
}

// Query retrieves order records matching the query, newest first.
func (s *HistoryServiceImpl) Query(ctx context.Context, query model.HistoryQuery) ([]model.OrderRecord, error) {
	if s.repo == nil {
		return nil, repository.ErrStoreNotConfigured
	}
	return s.repo.Find(ctx, ClampHistoryQuery(query))
}

// Count returns the number of order records matching the query.
func (s *HistoryServiceImpl) Count(ctx context.Context, query model.HistoryQuery) (int64, error) {
	if s.repo == nil {
		return 0, repository.ErrStoreNotConfigured
	}
	query.Limit, query.Skip = 0, 0
	return s.repo.Count(ctx, query)
}

func prepareRecord(r *model.OrderRecord) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
}

// ClampHistoryQuery applies the default page size and caps limit and skip.
func ClampHistoryQuery(q model.HistoryQuery) model.HistoryQuery {
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultHistoryLimit
	case q.Limit > MaxHistoryLimit:
		q.Limit = MaxHistoryLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	return q
}

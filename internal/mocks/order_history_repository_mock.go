// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

type MockOrderHistoryRepository struct {
	mock.Mock
}

func (m *MockOrderHistoryRepository) Insert(ctx context.Context, record *model.OrderRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrderHistoryRepository) InsertMany(ctx context.Context, records []*model.OrderRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockOrderHistoryRepository) Find(ctx context.Context, query model.HistoryQuery) ([]model.OrderRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRecord), args.Error(1)
}

func (m *MockOrderHistoryRepository) Count(ctx context.Context, query model.HistoryQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

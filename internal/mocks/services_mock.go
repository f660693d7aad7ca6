// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

type MockBundleCalculator struct {
	mock.Mock
}

func (m *MockBundleCalculator) Calculate(product model.Product, quantity int) (model.Breakdown, error) {
	args := m.Called(product, quantity)
	return args.Get(0).(model.Breakdown), args.Error(1)
}

func (m *MockBundleCalculator) InvalidateProduct(code string) {
	m.Called(code)
}

func (m *MockBundleCalculator) InvalidateCache() {
	m.Called()
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Get(ctx context.Context, code string) (*model.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Upsert(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockProductService) Seed(ctx context.Context, products []model.Product) (int, error) {
	args := m.Called(ctx, products)
	return args.Int(0), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Process(ctx context.Context, requestID string, lines []dto.OrderLine) ([]model.Breakdown, error) {
	args := m.Called(ctx, requestID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Breakdown), args.Error(1)
}

type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Record(ctx context.Context, record *model.OrderRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryService) RecordMany(ctx context.Context, records []*model.OrderRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockHistoryService) Query(ctx context.Context, query model.HistoryQuery) ([]model.OrderRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRecord), args.Error(1)
}

func (m *MockHistoryService) Count(ctx context.Context, query model.HistoryQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

type MockHistoryRecorder struct {
	mock.Mock
}

func (m *MockHistoryRecorder) Enqueue(record *model.OrderRecord) bool {
	args := m.Called(record)
	return args.Bool(0)
}

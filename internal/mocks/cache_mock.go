// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/service/cache"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key cache.Key) (model.Breakdown, bool) {
	args := m.Called(key)
	return args.Get(0).(model.Breakdown), args.Bool(1)
}

func (m *MockCache) Set(key cache.Key, value model.Breakdown) {
	m.Called(key, value)
}

func (m *MockCache) Invalidate(key cache.Key) {
	m.Called(key)
}

func (m *MockCache) InvalidateProduct(code string) {
	m.Called(code)
}

func (m *MockCache) Clear() {
	m.Called()
}

func (m *MockCache) Stop() {
	m.Called()
}

package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// Defaults returns the built-in flower catalog.
func Defaults() []model.Product {
	return []model.Product{
		{
			Code:        "R12",
			Name:        "Roses",
			BundleSizes: []int{10, 5},
			Prices: map[int]decimal.Decimal{
				10: decimal.RequireFromString("12.99"),
				5:  decimal.RequireFromString("6.99"),
			},
		},
		{
			Code:        "L09",
			Name:        "Lilies",
			BundleSizes: []int{9, 6, 3},
			Prices: map[int]decimal.Decimal{
				9: decimal.RequireFromString("24.95"),
				6: decimal.RequireFromString("16.95"),
				3: decimal.RequireFromString("9.95"),
			},
		},
		{
			Code:        "T58",
			Name:        "Tulips",
			BundleSizes: []int{9, 5, 3},
			Prices: map[int]decimal.Decimal{
				9: decimal.RequireFromString("16.99"),
				5: decimal.RequireFromString("9.95"),
				3: decimal.RequireFromString("5.95"),
			},
		},
	}
}

// DefaultLoader serves the built-in catalog.
type DefaultLoader struct{}

// Load returns Defaults.
func (DefaultLoader) Load(context.Context) ([]model.Product, error) {
	return Defaults(), nil
}

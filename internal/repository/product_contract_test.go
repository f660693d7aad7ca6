package repository

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

func product(code, name string, prices map[int]string) model.Product {
	p := model.Product{Code: code, Name: name, Prices: map[int]decimal.Decimal{}}
	for size, price := range prices {
		p.BundleSizes = append(p.BundleSizes, size)
		p.Prices[size] = decimal.RequireFromString(price)
	}
	return p
}

// testProductRepository runs the behaviour every ProductRepository must share.
func testProductRepository(t *testing.T, repo ProductRepository) {
	ctx := context.Background()

	roses := product("R12", "Roses", map[int]string{5: "6.99", 10: "12.99"})
	tulips := product("T58", "Tulips", map[int]string{3: "5.95", 9: "16.99", 5: "9.95"})

	t.Run("get unknown product", func(t *testing.T) {
		_, err := repo.GetByCode(ctx, "NOPE")
		assert.True(t, errors.Is(err, ErrProductNotFound))
	})

	t.Run("upsert then get returns normalized product", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, roses))

		got, err := repo.GetByCode(ctx, "R12")
		require.NoError(t, err)
		assert.Equal(t, "Roses", got.Name)
		assert.Equal(t, []int{10, 5}, got.BundleSizes)
		assert.Equal(t, "12.99", got.Prices[10].StringFixed(2))
		assert.Equal(t, "6.99", got.Prices[5].StringFixed(2))
	})

	t.Run("upsert replaces existing product", func(t *testing.T) {
		changed := product("R12", "Red Roses", map[int]string{10: "11.00", 5: "6.00", 20: "20.00"})
		require.NoError(t, repo.Upsert(ctx, changed))

		got, err := repo.GetByCode(ctx, "R12")
		require.NoError(t, err)
		assert.Equal(t, "Red Roses", got.Name)
		assert.Equal(t, []int{20, 10, 5}, got.BundleSizes)
	})

	t.Run("list is ordered by code and honours limit", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, tulips))
		require.NoError(t, repo.Upsert(ctx, product("L09", "Lilies", map[int]string{9: "24.95", 6: "16.95", 3: "9.95"})))

		all, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"L09", "R12", "T58"}, []string{all[0].Code, all[1].Code, all[2].Code})

		limited, err := repo.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("returned products are copies", func(t *testing.T) {
		got, err := repo.GetByCode(ctx, "T58")
		require.NoError(t, err)
		got.BundleSizes[0] = 1
		got.Prices[9] = decimal.Zero

		again, err := repo.GetByCode(ctx, "T58")
		require.NoError(t, err)
		assert.Equal(t, []int{9, 5, 3}, again.BundleSizes)
		assert.Equal(t, "16.99", again.Prices[9].StringFixed(2))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "T58"))

		_, err := repo.GetByCode(ctx, "T58")
		assert.True(t, errors.Is(err, ErrProductNotFound))

		err = repo.Delete(ctx, "T58")
		assert.True(t, errors.Is(err, ErrProductNotFound))
	})
}

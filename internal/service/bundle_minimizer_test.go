package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prices(kv map[int]string) map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(kv))
	for size, p := range kv {
		out[size] = decimal.RequireFromString(p)
	}
	return out
}

var (
	roses = model.Product{
		Code:        "R12",
		Name:        "Roses",
		BundleSizes: []int{10, 5},
		Prices:      prices(map[int]string{10: "12.99", 5: "6.99"}),
	}
	lilies = model.Product{
		Code:        "L09",
		Name:        "Lilies",
		BundleSizes: []int{9, 6, 3},
		Prices:      prices(map[int]string{9: "24.95", 6: "16.95", 3: "9.95"}),
	}
	tulips = model.Product{
		Code:        "T58",
		Name:        "Tulips",
		BundleSizes: []int{9, 5, 3},
		Prices:      prices(map[int]string{9: "16.99", 5: "9.95", 3: "5.95"}),
	}
	testFlowers = model.Product{
		Code:        "TEST",
		Name:        "Test Flowers",
		BundleSizes: []int{9, 3, 2},
		Prices:      prices(map[int]string{9: "16.99", 3: "9.95", 2: "5.95"}),
	}
)

func TestMinimizeBundles(t *testing.T) {
	tests := []struct {
		name       string
		product    model.Product
		quantity   int
		wantCounts map[int]int
		wantCost   string
		wantNone   bool
	}{
		{name: "roses 15", product: roses, quantity: 15, wantCounts: map[int]int{10: 1, 5: 1}, wantCost: "19.98"},
		{name: "roses 10", product: roses, quantity: 10, wantCounts: map[int]int{10: 1}, wantCost: "12.99"},
		{name: "roses 1005", product: roses, quantity: 1005, wantCounts: map[int]int{10: 100, 5: 1}, wantCost: "1305.99"},
		{name: "roses 7 has no solution", product: roses, quantity: 7, wantNone: true},
		{name: "lilies 12 prefers the larger bundle", product: lilies, quantity: 12, wantCounts: map[int]int{9: 1, 3: 1}, wantCost: "34.90"},
		{name: "lilies 15", product: lilies, quantity: 15, wantCounts: map[int]int{9: 1, 6: 1}, wantCost: "41.90"},
		{name: "lilies 18", product: lilies, quantity: 18, wantCounts: map[int]int{9: 2}, wantCost: "49.90"},
		{name: "lilies 24", product: lilies, quantity: 24, wantCounts: map[int]int{9: 2, 6: 1}, wantCost: "66.85"},
		{name: "tulips 13", product: tulips, quantity: 13, wantCounts: map[int]int{5: 2, 3: 1}, wantCost: "25.85"},
		{name: "tulips 89", product: tulips, quantity: 89, wantCounts: map[int]int{9: 9, 5: 1, 3: 1}, wantCost: "168.81"},
		{name: "tulips 277", product: tulips, quantity: 277, wantCounts: map[int]int{9: 29, 5: 2, 3: 2}, wantCost: "524.51"},
		{name: "tulips 1 has no solution", product: tulips, quantity: 1, wantNone: true},
		{name: "tulips 4 has no solution", product: tulips, quantity: 4, wantNone: true},
		{name: "test 4", product: testFlowers, quantity: 4, wantCounts: map[int]int{2: 2}, wantCost: "11.90"},
		{name: "test 20", product: testFlowers, quantity: 20, wantCounts: map[int]int{9: 2, 2: 1}, wantCost: "39.93"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := MinimizeBundles(tt.product, tt.quantity)
			require.NoError(t, err)

			assert.Equal(t, tt.product.Code, b.ProductCode)
			assert.Equal(t, tt.quantity, b.RequestedQuantity)

			if tt.wantNone {
				assert.False(t, b.Feasible())
				assert.Empty(t, b.Bundles)
				assert.True(t, b.TotalCost.IsZero())
				assert.Equal(t, fmt.Sprintf("No bundle combination found for %d %s", tt.quantity, tt.product.Code), b.NoSolution)
				return
			}

			assert.True(t, b.Feasible())
			assert.Equal(t, tt.wantCounts, b.Counts())
			assert.Equal(t, tt.wantCost, b.TotalCost.StringFixed(2))
		})
	}
}

func TestMinimizeBundles_Summary(t *testing.T) {
	tests := []struct {
		product  model.Product
		quantity int
		want     string
	}{
		{roses, 10, "10 R12 $12.99 : 1 x 10 $12.99"},
		{lilies, 15, "15 L09 $41.90 : 1 x 9 $24.95, 1 x 6 $16.95"},
		{tulips, 13, "13 T58 $25.85 : 2 x 5 $19.90, 1 x 3 $5.95"},
		{roses, 7, "7 R12 $0 : No bundle combination found for 7 R12"},
		{tulips, 0, "0 T58 $0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			b, err := MinimizeBundles(tt.product, tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Summary())
		})
	}
}

func TestMinimizeBundles_ZeroQuantity(t *testing.T) {
	for _, p := range []model.Product{roses, lilies, tulips} {
		b, err := MinimizeBundles(p, 0)
		require.NoError(t, err)

		assert.True(t, b.Feasible())
		assert.Empty(t, b.Bundles)
		assert.Equal(t, 0, b.TotalBundles)
		assert.True(t, b.TotalCost.IsZero())
	}
}

func TestMinimizeBundles_ContractErrors(t *testing.T) {
	tests := []struct {
		name     string
		product  model.Product
		quantity int
		wantErr  error
	}{
		{
			name:     "negative quantity",
			product:  roses,
			quantity: -1,
			wantErr:  ErrNegativeQuantity,
		},
		{
			name:     "no bundle sizes",
			product:  model.Product{Code: "X"},
			quantity: 10,
			wantErr:  ErrNoBundleSizes,
		},
		{
			name:     "zero bundle size",
			product:  model.Product{Code: "X", BundleSizes: []int{5, 0}, Prices: prices(map[int]string{5: "1"})},
			quantity: 10,
			wantErr:  ErrInvalidBundleSize,
		},
		{
			name:     "negative bundle size",
			product:  model.Product{Code: "X", BundleSizes: []int{-5}},
			quantity: 10,
			wantErr:  ErrInvalidBundleSize,
		},
		{
			name:     "used size without price",
			product:  model.Product{Code: "X", BundleSizes: []int{10, 5}, Prices: prices(map[int]string{10: "1"})},
			quantity: 15,
			wantErr:  ErrMissingPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MinimizeBundles(tt.product, tt.quantity)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestMinimizeBundles_UnpricedSizeUnused(t *testing.T) {
	p := model.Product{Code: "X", BundleSizes: []int{10, 5}, Prices: prices(map[int]string{10: "1"})}

	b, err := MinimizeBundles(p, 20)

	require.NoError(t, err)
	assert.Equal(t, map[int]int{10: 2}, b.Counts())
}

func TestMinimizeBundles_DuplicateSizes(t *testing.T) {
	p := roses
	p.BundleSizes = []int{5, 10, 5}

	b, err := MinimizeBundles(p, 15)

	require.NoError(t, err)
	assert.Equal(t, map[int]int{10: 1, 5: 1}, b.Counts())
	assert.Equal(t, 10, b.Bundles[0].Size, "lines are ordered by size descending")
}

func TestMinimizeSizes(t *testing.T) {
	b, err := MinimizeSizes([]int{3, 5}, prices(map[int]string{3: "1.00", 5: "2.00"}), 11)

	require.NoError(t, err)
	assert.Equal(t, map[int]int{5: 1, 3: 2}, b.Counts())
	assert.Equal(t, "4.00", b.TotalCost.StringFixed(2))
	assert.Empty(t, b.ProductCode)
}

// bruteForceMin enumerates every combination and returns the fewest bundles
// summing to quantity, or -1.
func bruteForceMin(sizes []int, quantity int) int {
	if quantity == 0 {
		return 0
	}
	if len(sizes) == 0 {
		return -1
	}
	best := -1
	for n := 0; n*sizes[0] <= quantity; n++ {
		rest := bruteForceMin(sizes[1:], quantity-n*sizes[0])
		if rest >= 0 && (best < 0 || n+rest < best) {
			best = n + rest
		}
	}
	return best
}

func TestMinimizeBundles_MatchesBruteForce(t *testing.T) {
	sizeSets := [][]int{
		{10, 5},
		{9, 6, 3},
		{9, 5, 3},
		{9, 3, 2},
		{7, 4},
		{1},
		{6, 4, 1},
		{13, 8, 5, 2},
	}

	for _, sizes := range sizeSets {
		p := model.Product{Code: "P", Name: "P", BundleSizes: sizes, Prices: map[int]decimal.Decimal{}}
		for _, s := range sizes {
			p.Prices[s] = decimal.NewFromInt(int64(s))
		}

		t.Run(fmt.Sprint(sizes), func(t *testing.T) {
			for q := 0; q <= 60; q++ {
				b, err := MinimizeBundles(p, q)
				require.NoError(t, err)

				want := bruteForceMin(sizes, q)
				if want < 0 {
					assert.False(t, b.Feasible(), "q=%d", q)
					continue
				}

				require.True(t, b.Feasible(), "q=%d", q)
				assert.Equal(t, want, b.TotalBundles, "q=%d", q)
				assert.Equal(t, q, b.Items(), "q=%d", q)

				// price equals size here, so cost equals quantity
				assert.True(t, decimal.NewFromInt(int64(q)).Equal(b.TotalCost), "q=%d", q)
			}
		})
	}
}

func TestMinimizeBundles_LineInvariants(t *testing.T) {
	for _, p := range []model.Product{roses, lilies, tulips, testFlowers} {
		for q := 1; q <= 300; q++ {
			b, err := MinimizeBundles(p, q)
			require.NoError(t, err)
			if !b.Feasible() {
				continue
			}

			cost := decimal.Zero
			bundles := 0
			for i, l := range b.Bundles {
				assert.Positive(t, l.Count)
				assert.True(t, l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Count))).Equal(l.Subtotal))
				if i > 0 {
					assert.Less(t, l.Size, b.Bundles[i-1].Size)
				}
				cost = cost.Add(l.Subtotal)
				bundles += l.Count
			}
			assert.True(t, cost.Equal(b.TotalCost), "%s q=%d", p.Code, q)
			assert.Equal(t, bundles, b.TotalBundles)
			assert.Equal(t, q, b.Items())
		}
	}
}

func TestMinimizeBundles_Deterministic(t *testing.T) {
	first, err := MinimizeBundles(lilies, 123)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := MinimizeBundles(lilies, 123)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMinimizeBundles_DoesNotMutateProduct(t *testing.T) {
	p := tulips
	p.BundleSizes = []int{3, 9, 5}

	_, err := MinimizeBundles(p, 277)

	require.NoError(t, err)
	assert.Equal(t, []int{3, 9, 5}, p.BundleSizes)
}

func TestMinimizeBundles_Concurrent(t *testing.T) {
	want, err := MinimizeBundles(tulips, 277)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// interleave different table sizes through the pool
			_, _ = MinimizeBundles(roses, 1000+i)
			got, err := MinimizeBundles(tulips, 277)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}(i)
	}
	wg.Wait()
}

func BenchmarkMinimizeBundles_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = MinimizeBundles(tulips, 277)
	}
}

func BenchmarkMinimizeBundles_Large(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = MinimizeBundles(tulips, 100_000)
	}
}

func BenchmarkMinimizeBundles_Parallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = MinimizeBundles(lilies, 5_000)
		}
	})
}

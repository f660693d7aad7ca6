package service

import (
	"sort"
	"sync"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Contract violations. These indicate a malformed descriptor or caller bug,
// never a business outcome: an unreachable quantity is a NoSolution breakdown.
var (
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
	ErrNoBundleSizes     = errors.New("no bundle sizes")
	ErrInvalidBundleSize = errors.New("bundle size must be positive")
	ErrMissingPrice      = errors.New("bundle size has no price")
)

// cell is one entry of the DP table: the fewest bundles reaching an amount and
// the bundle size used last to get there.
type cell struct {
	count     int
	via       int
	reachable bool
}

// dpTable holds the DP cells for reuse via sync.Pool.
type dpTable struct {
	cells []cell
}

// tablePool provides reusable tables; pre-allocated for quantities up to 10K.
var tablePool = sync.Pool{
	New: func() interface{} {
		return &dpTable{cells: make([]cell, 0, 10000)}
	},
}

// getTable returns a table with size cells, all unreachable except cell 0.
func getTable(size int) *dpTable {
	t, _ := tablePool.Get().(*dpTable)
	if t == nil {
		t = &dpTable{}
	}

	if cap(t.cells) < size {
		t.cells = make([]cell, size)
	} else {
		t.cells = t.cells[:size]
		clear(t.cells)
	}
	t.cells[0] = cell{reachable: true}

	return t
}

// putTable returns a table to the pool, dropping very large buffers.
func putTable(t *dpTable) {
	if cap(t.cells) > 1_000_000 {
		t.cells = make([]cell, 0, 10000)
	}
	tablePool.Put(t)
}

// MinimizeBundles finds the combination of the product's bundle sizes that
// sums exactly to quantity using the fewest bundles.
//
// Sizes are tried largest first and a candidate only replaces the current best
// on a strictly smaller count, so among equally small combinations the one
// using larger bundles wins. The result is deterministic for a given input.
func MinimizeBundles(p model.Product, quantity int) (model.Breakdown, error) {
	if quantity < 0 {
		return model.Breakdown{}, errors.Wrapf(ErrNegativeQuantity, "%s: %d", p.Code, quantity)
	}
	if len(p.BundleSizes) == 0 {
		return model.Breakdown{}, errors.Wrapf(ErrNoBundleSizes, "product %q", p.Code)
	}

	sizes, err := descendingSizes(p.BundleSizes)
	if err != nil {
		return model.Breakdown{}, errors.Wrapf(err, "product %q", p.Code)
	}

	if quantity == 0 {
		return model.EmptyBreakdown(p), nil
	}

	counts, ok := solve(sizes, quantity)
	if !ok {
		return model.NoSolutionBreakdown(p, quantity), nil
	}

	return price(p, sizes, counts, quantity)
}

// MinimizeSizes runs the minimizer on a bare size and price set.
func MinimizeSizes(sizes []int, prices map[int]decimal.Decimal, quantity int) (model.Breakdown, error) {
	return MinimizeBundles(model.Product{BundleSizes: sizes, Prices: prices}, quantity)
}

// descendingSizes copies, validates and de-duplicates sizes, largest first.
func descendingSizes(in []int) ([]int, error) {
	sizes := make([]int, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for _, s := range in {
		if s <= 0 {
			return nil, errors.Wrapf(ErrInvalidBundleSize, "got %d", s)
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes, nil
}

// solve fills the DP table and walks the predecessors back from quantity.
// counts[i] is the number of bundles of sizes[i].
func solve(sizes []int, quantity int) ([]int, bool) {
	table := getTable(quantity + 1)
	defer putTable(table)

	best := table.cells
	for amount := 1; amount <= quantity; amount++ {
		cur := &best[amount]
		for _, s := range sizes {
			if s > amount {
				continue
			}
			prev := best[amount-s]
			if !prev.reachable {
				continue
			}
			if !cur.reachable || prev.count+1 < cur.count {
				*cur = cell{count: prev.count + 1, via: s, reachable: true}
			}
		}
	}

	if !best[quantity].reachable {
		return nil, false
	}

	index := make(map[int]int, len(sizes))
	for i, s := range sizes {
		index[s] = i
	}

	counts := make([]int, len(sizes))
	for amount := quantity; amount > 0; amount -= best[amount].via {
		counts[index[best[amount].via]]++
	}
	return counts, true
}

// price turns bundle counts into a priced breakdown.
func price(p model.Product, sizes, counts []int, quantity int) (model.Breakdown, error) {
	b := model.Breakdown{
		ProductCode:       p.Code,
		ProductName:       p.Name,
		RequestedQuantity: quantity,
		Bundles:           make([]model.BundleLine, 0, len(sizes)),
		TotalCost:         decimal.Zero,
	}

	for i, count := range counts {
		if count == 0 {
			continue
		}
		unit, ok := p.Prices[sizes[i]]
		if !ok {
			return model.Breakdown{}, errors.Wrapf(ErrMissingPrice, "product %q size %d", p.Code, sizes[i])
		}
		subtotal := unit.Mul(decimal.NewFromInt(int64(count)))
		b.Bundles = append(b.Bundles, model.BundleLine{
			Size:      sizes[i],
			Count:     count,
			UnitPrice: unit,
			Subtotal:  subtotal,
		})
		b.TotalBundles += count
		b.TotalCost = b.TotalCost.Add(subtotal)
	}

	return b, nil
}

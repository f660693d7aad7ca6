package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BundleLine is one bundle size used in a breakdown.
//
// @Description Bundle size, how many bundles of it are used and what they cost
// @Example {"size": 10, "count": 1, "unit_price": "12.99", "subtotal": "12.99"}
type BundleLine struct {
	// Size is the bundle size
	Size int `json:"size" example:"10"`
	// Count is the number of bundles of this size
	Count int `json:"count" example:"1"`
	// UnitPrice is the price of one bundle
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.99"`
	// Subtotal is Count x UnitPrice
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"12.99"`
} // @name BundleLine

// Items returns the number of items the line covers.
func (l BundleLine) Items() int {
	return l.Size * l.Count
}

// Breakdown is the outcome of minimising the bundles for one order line.
// It is either a solution (NoSolution empty) or an infeasible result carrying
// an explanation, in which case Bundles is empty and TotalCost is zero.
//
// @Description Minimum bundle combination for an order line, or the reason none exists
// @Example {"product_code": "R12", "product_name": "Roses", "requested_quantity": 15, "bundles": [{"size": 10, "count": 1, "unit_price": "12.99", "subtotal": "12.99"}, {"size": 5, "count": 1, "unit_price": "6.99", "subtotal": "6.99"}], "total_bundles": 2, "total_cost": "19.98"}
type Breakdown struct {
	ProductCode       string          `json:"product_code" example:"R12"`
	ProductName       string          `json:"product_name,omitempty" example:"Roses"`
	RequestedQuantity int             `json:"requested_quantity" example:"15"`
	Bundles           []BundleLine    `json:"bundles"`
	TotalBundles      int             `json:"total_bundles" example:"2"`
	TotalCost         decimal.Decimal `json:"total_cost" swaggertype:"string" example:"19.98"`
	NoSolution        string          `json:"no_solution,omitempty" example:""`
} // @name Breakdown

// EmptyBreakdown returns the solution for a zero quantity.
func EmptyBreakdown(p Product) Breakdown {
	return Breakdown{
		ProductCode: p.Code,
		ProductName: p.Name,
		Bundles:     []BundleLine{},
		TotalCost:   decimal.Zero,
	}
}

// NoSolutionBreakdown returns the infeasible result for a quantity.
func NoSolutionBreakdown(p Product, quantity int) Breakdown {
	return Breakdown{
		ProductCode:       p.Code,
		ProductName:       p.Name,
		RequestedQuantity: quantity,
		Bundles:           []BundleLine{},
		TotalCost:         decimal.Zero,
		NoSolution:        NoSolutionMessage(quantity, p.Code),
	}
}

// NoSolutionMessage explains why a quantity cannot be bundled.
func NoSolutionMessage(quantity int, code string) string {
	return fmt.Sprintf("No bundle combination found for %d %s", quantity, code)
}

// Feasible reports whether the breakdown is a solution.
func (b Breakdown) Feasible() bool {
	return b.NoSolution == ""
}

// Counts returns the bundle count per size.
func (b Breakdown) Counts() map[int]int {
	counts := make(map[int]int, len(b.Bundles))
	for _, line := range b.Bundles {
		counts[line.Size] = line.Count
	}
	return counts
}

// Items returns the number of items the breakdown covers.
func (b Breakdown) Items() int {
	total := 0
	for _, line := range b.Bundles {
		total += line.Items()
	}
	return total
}

// Summary renders the breakdown as a single order line, e.g.
// "15 R12 $19.98 : 1 x 10 $12.99, 1 x 5 $6.99".
func (b Breakdown) Summary() string {
	if !b.Feasible() {
		return fmt.Sprintf("%d %s $0 : %s", b.RequestedQuantity, b.ProductCode, b.NoSolution)
	}

	head := fmt.Sprintf("%d %s $%s", b.RequestedQuantity, b.ProductCode, b.TotalCost.StringFixed(2))
	if len(b.Bundles) == 0 {
		return head
	}

	parts := make([]string, 0, len(b.Bundles))
	for _, line := range b.Bundles {
		parts = append(parts, fmt.Sprintf("%d x %d $%s", line.Count, line.Size, line.Subtotal.StringFixed(2)))
	}
	return head + " : " + strings.Join(parts, ", ")
}

// Package model defines the core domain entities for the flower shop.
package model

import (
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidProduct is the root error for malformed product descriptors.
	ErrInvalidProduct = errors.New("invalid product")
)

// Product is the descriptor the bundle minimizer works on.
//
// @Description Product with the bundle sizes it is sold in and the price of each bundle
// @Example {"code": "R12", "name": "Roses", "bundles": [10, 5], "prices": {"10": "12.99", "5": "6.99"}}
type Product struct {
	// Code uniquely identifies the product (e.g. R12)
	Code string `json:"code" example:"R12"`
	// Name is the display name
	Name string `json:"name" example:"Roses"`
	// BundleSizes lists the sizes the product is sold in
	BundleSizes []int `json:"bundles" example:"10,5"`
	// Prices maps each bundle size to the price of one bundle
	Prices map[int]decimal.Decimal `json:"prices" swaggertype:"object,string"`
} // @name Product

// Price returns the unit price of a bundle size.
func (p Product) Price(size int) (decimal.Decimal, bool) {
	price, ok := p.Prices[size]
	return price, ok
}

// Validate reports whether the descriptor can be handed to the minimizer.
// Every size must be positive, unique and priced; prices must not be negative.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return errors.Wrap(ErrInvalidProduct, "code is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrapf(ErrInvalidProduct, "%s: name is required", p.Code)
	}
	if len(p.BundleSizes) == 0 {
		return errors.Wrapf(ErrInvalidProduct, "%s: at least one bundle size is required", p.Code)
	}

	seen := make(map[int]struct{}, len(p.BundleSizes))
	for _, size := range p.BundleSizes {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidProduct, "%s: bundle size %d must be positive", p.Code, size)
		}
		if _, dup := seen[size]; dup {
			return errors.Wrapf(ErrInvalidProduct, "%s: duplicate bundle size %d", p.Code, size)
		}
		seen[size] = struct{}{}

		price, ok := p.Prices[size]
		if !ok {
			return errors.Wrapf(ErrInvalidProduct, "%s: bundle size %d has no price", p.Code, size)
		}
		if price.IsNegative() {
			return errors.Wrapf(ErrInvalidProduct, "%s: price of bundle size %d is negative", p.Code, size)
		}
	}
	return nil
}

// Normalized returns a copy with bundle sizes de-duplicated and sorted
// descending. Prices of sizes the product is not sold in are dropped.
func (p Product) Normalized() Product {
	out := Product{
		Code:   strings.TrimSpace(p.Code),
		Name:   strings.TrimSpace(p.Name),
		Prices: make(map[int]decimal.Decimal, len(p.BundleSizes)),
	}

	seen := make(map[int]struct{}, len(p.BundleSizes))
	out.BundleSizes = make([]int, 0, len(p.BundleSizes))
	for _, size := range p.BundleSizes {
		if _, dup := seen[size]; dup {
			continue
		}
		seen[size] = struct{}{}
		out.BundleSizes = append(out.BundleSizes, size)
		if price, ok := p.Prices[size]; ok {
			out.Prices[size] = price
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out.BundleSizes)))

	return out
}

// PriceList is the YAML-friendly shape of a product, used by seed catalogs.
type PriceList struct {
	Code    string         `yaml:"code"`
	Name    string         `yaml:"name"`
	Bundles []int          `yaml:"bundles"`
	Prices  map[int]string `yaml:"prices"`
}

// Product converts the price list into a descriptor, parsing prices as decimals.
func (l PriceList) Product() (Product, error) {
	prices := make(map[int]decimal.Decimal, len(l.Prices))
	for size, raw := range l.Prices {
		price, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return Product{}, errors.Wrapf(ErrInvalidProduct, "%s: price of bundle size %d: %v", l.Code, size, err)
		}
		prices[size] = price
	}
	return Product{
		Code:        l.Code,
		Name:        l.Name,
		BundleSizes: append([]int(nil), l.Bundles...),
		Prices:      prices,
	}, nil
}

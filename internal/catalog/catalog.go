// Package catalog loads the product catalog used to seed the product store.
package catalog

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// ErrEmptyCatalog is returned when a source holds no products.
var ErrEmptyCatalog = errors.New("catalog has no products")

// Loader reads a product catalog from some source.
type Loader interface {
	Load(ctx context.Context) ([]model.Product, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]model.Product, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) ([]model.Product, error) {
	return f(ctx)
}

// document is the YAML layout of a catalog file:
//
//	products:
//	  - code: R12
//	    name: Roses
//	    bundles: [10, 5]
//	    prices: {10: "12.99", 5: "6.99"}
type document struct {
	Products []model.PriceList `yaml:"products"`
}

// Parse decodes a YAML catalog and validates every product in it.
func Parse(r io.Reader) ([]model.Product, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, errors.Wrap(err, "decode catalog")
	}
	if len(doc.Products) == 0 {
		return nil, ErrEmptyCatalog
	}

	products := make([]model.Product, 0, len(doc.Products))
	seen := make(map[string]struct{}, len(doc.Products))
	for i, entry := range doc.Products {
		p, err := entry.Product()
		if err != nil {
			return nil, errors.Wrapf(err, "product #%d", i+1)
		}
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "product #%d", i+1)
		}
		p = p.Normalized()
		if _, dup := seen[p.Code]; dup {
			return nil, errors.Wrapf(model.ErrInvalidProduct, "product #%d: duplicate code %s", i+1, p.Code)
		}
		seen[p.Code] = struct{}{}
		products = append(products, p)
	}
	return products, nil
}

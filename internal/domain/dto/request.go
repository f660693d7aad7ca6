// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// OrderLine is one line of an order: a product code and the quantity wanted.
//
// @Description One order line
// @Example {"code": "R12", "quantity": 15}
type OrderLine struct {
	// Code is the product code
	Code string `json:"code" example:"R12"`
	// Quantity is the number of items ordered, must be positive
	Quantity int `json:"quantity" example:"15" minimum:"1"`
} // @name OrderLine

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingCode is returned when an order line has no product code.
	ErrMissingCode = &ValidationError{Field: "code", Message: "is required"}
	// ErrInvalidQuantity is returned when an order line quantity is not positive.
	ErrInvalidQuantity = &ValidationError{Field: "quantity", Message: "must be a positive integer"}
)

// Validate checks the shape of the line. Quantity limits are enforced by the order service.
func (l OrderLine) Validate() error {
	if strings.TrimSpace(l.Code) == "" {
		return ErrMissingCode
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// ProductRequest is the body of PUT /api/v1/products/:code.
//
// @Description Product descriptor to create or replace
// @Example {"name": "Roses", "bundles": [10, 5], "prices": {"10": "12.99", "5": "6.99"}}
type ProductRequest struct {
	// Code must be empty or equal to the path code
	Code string `json:"code,omitempty" example:"R12"`
	// Name is the display name
	Name string `json:"name" binding:"required" example:"Roses"`
	// Bundles lists the bundle sizes
	Bundles []int `json:"bundles" binding:"required,min=1" example:"10,5"`
	// Prices maps bundle sizes to the price of one bundle
	Prices map[string]string `json:"prices" binding:"required"`
} // @name ProductRequest

// Product converts the request into a descriptor for the product with the given code.
func (r ProductRequest) Product(code string) (model.Product, error) {
	if r.Code != "" && !strings.EqualFold(strings.TrimSpace(r.Code), code) {
		return model.Product{}, &ValidationError{Field: "code", Message: "must match the product in the path"}
	}

	prices := make(map[int]decimal.Decimal, len(r.Prices))
	for rawSize, rawPrice := range r.Prices {
		size, err := strconv.Atoi(strings.TrimSpace(rawSize))
		if err != nil {
			return model.Product{}, &ValidationError{Field: "prices", Message: "bundle size " + strconv.Quote(rawSize) + " is not an integer"}
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rawPrice))
		if err != nil {
			return model.Product{}, &ValidationError{Field: "prices", Message: "price " + strconv.Quote(rawPrice) + " is not a decimal"}
		}
		prices[size] = price
	}

	return model.Product{
		Code:        code,
		Name:        r.Name,
		BundleSizes: append([]int(nil), r.Bundles...),
		Prices:      prices,
	}, nil
}

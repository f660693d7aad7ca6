package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/metrics"
	"github.com/AJLandry1000000000/flower-shop/internal/repository"
)

// DefaultMaxQuantity bounds the quantity of a single order line.
const DefaultMaxQuantity = 1_000_000

var (
	// ErrInvalidOrderRequest is returned for an empty order.
	ErrInvalidOrderRequest = errors.New("invalid order request")
	// ErrInvalidOrderFormat is returned when an order line is malformed.
	ErrInvalidOrderFormat = errors.New("invalid order format")
)

// ProductNotFoundError reports the first order line whose product is unknown.
type ProductNotFoundError struct {
	Code string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.Code)
}

// Unwrap lets callers match repository.ErrProductNotFound.
func (e *ProductNotFoundError) Unwrap() error {
	return repository.ErrProductNotFound
}

// OrderService turns order lines into bundle breakdowns.
type OrderService interface {
	// Process returns one breakdown per line, in request order. Lines that
	// cannot be bundled yield a NoSolution breakdown, not an error.
	Process(ctx context.Context, requestID string, lines []dto.OrderLine) ([]model.Breakdown, error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	products    ProductService
	calculator  BundleCalculator
	recorder    HistoryRecorder
	maxQuantity int
}

// OrderOption configures an OrderServiceImpl.
type OrderOption func(*OrderServiceImpl)

// WithRecorder enables order history recording.
func WithRecorder(r HistoryRecorder) OrderOption {
	return func(s *OrderServiceImpl) {
		s.recorder = r
	}
}

// WithMaxQuantity overrides DefaultMaxQuantity.
func WithMaxQuantity(n int) OrderOption {
	return func(s *OrderServiceImpl) {
		if n > 0 {
			s.maxQuantity = n
		}
	}
}

// NewOrderService creates a new order service.
func NewOrderService(products ProductService, calculator BundleCalculator, opts ...OrderOption) OrderService {
	s := &OrderServiceImpl{
		products:    products,
		calculator:  calculator,
		maxQuantity: DefaultMaxQuantity,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *OrderServiceImpl) Process(ctx context.Context, requestID string, lines []dto.OrderLine) ([]model.Breakdown, error) {
	if err := s.validate(lines); err != nil {
		return nil, err
	}

	// every product is resolved before any line is computed
	products := make([]model.Product, len(lines))
	resolved := make(map[string]model.Product, len(lines))
	for i, line := range lines {
		code := normalizeCode(line.Code)
		if p, ok := resolved[code]; ok {
			products[i] = p
			continue
		}
		p, err := s.products.Get(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, &ProductNotFoundError{Code: line.Code}
			}
			return nil, errors.Wrapf(err, "lookup product %s", code)
		}
		resolved[code] = *p
		products[i] = *p
	}

	breakdowns := make([]model.Breakdown, len(lines))
	for i, line := range lines {
		start := time.Now()
		b, err := s.calculator.Calculate(products[i], line.Quantity)
		if err != nil {
			metrics.RecordOrderLine(products[i].Code, line.Quantity, metrics.StatusError)
			return nil, errors.Wrapf(err, "order line %d", i+1)
		}
		took := time.Since(start)

		status := metrics.StatusFeasible
		if !b.Feasible() {
			status = metrics.StatusNoSolution
		}
		metrics.RecordOrderLine(b.ProductCode, line.Quantity, status)

		breakdowns[i] = b
		if s.recorder != nil {
			s.recorder.Enqueue(model.NewOrderRecord(requestID, b, took))
		}
	}

	return breakdowns, nil
}

func (s *OrderServiceImpl) validate(lines []dto.OrderLine) error {
	if len(lines) == 0 {
		return ErrInvalidOrderRequest
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return errors.Wrapf(ErrInvalidOrderFormat, "line %d: %v", i+1, err)
		}
		if line.Quantity > s.maxQuantity {
			return errors.Wrapf(ErrInvalidOrderFormat, "line %d: quantity %d exceeds %d", i+1, line.Quantity, s.maxQuantity)
		}
	}
	return nil
}

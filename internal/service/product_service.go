package service

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/logger"
	"github.com/AJLandry1000000000/flower-shop/internal/repository"
)

// ProductService provides catalog operations.
type ProductService interface {
	Get(ctx context.Context, code string) (*model.Product, error)
	List(ctx context.Context, limit int) ([]model.Product, error)
	// Upsert validates and stores the product, returning the stored (normalized) form.
	Upsert(ctx context.Context, product model.Product) (model.Product, error)
	Delete(ctx context.Context, code string) error
	// Seed inserts the products that are not in the store yet and returns how many were added.
	Seed(ctx context.Context, products []model.Product) (int, error)
}

// ProductServiceImpl implements ProductService.
type ProductServiceImpl struct {
	repo       repository.ProductRepository
	calculator BundleCalculator
}

// NewProductService creates a new product service. The calculator, when set,
// has its cached results dropped whenever a product changes.
func NewProductService(repo repository.ProductRepository, calculator BundleCalculator) ProductService {
	return &ProductServiceImpl{
		repo:       repo,
		calculator: calculator,
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *ProductServiceImpl) Get(ctx context.Context, code string) (*model.Product, error) {
	if s.repo == nil {
		return nil, repository.ErrStoreNotConfigured
	}
	return s.repo.GetByCode(ctx, normalizeCode(code))
}

func (s *ProductServiceImpl) List(ctx context.Context, limit int) ([]model.Product, error) {
	if s.repo == nil {
		return nil, repository.ErrStoreNotConfigured
	}
	return s.repo.List(ctx, limit)
}

func (s *ProductServiceImpl) Upsert(ctx context.Context, product model.Product) (model.Product, error) {
	if s.repo == nil {
		return model.Product{}, repository.ErrStoreNotConfigured
	}

	product.Code = normalizeCode(product.Code)
	if err := product.Validate(); err != nil {
		return model.Product{}, err
	}
	product = product.Normalized()

	if err := s.repo.Upsert(ctx, product); err != nil {
		return model.Product{}, errors.Wrapf(err, "upsert product %s", product.Code)
	}
	s.invalidate(product.Code)

	return product, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, code string) error {
	if s.repo == nil {
		return repository.ErrStoreNotConfigured
	}

	code = normalizeCode(code)
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	s.invalidate(code)
	return nil
}

func (s *ProductServiceImpl) Seed(ctx context.Context, products []model.Product) (int, error) {
	if s.repo == nil {
		return 0, repository.ErrStoreNotConfigured
	}

	log := logger.Logger()
	added := 0
	for _, p := range products {
		_, err := s.repo.GetByCode(ctx, normalizeCode(p.Code))
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrProductNotFound) {
			return added, errors.Wrapf(err, "seed lookup %s", p.Code)
		}

		if _, err := s.Upsert(ctx, p); err != nil {
			return added, errors.Wrap(err, "seed")
		}
		added++
	}

	log.Info().Int("added", added).Int("catalog", len(products)).Msg("Product catalog seeded")
	return added, nil
}

func (s *ProductServiceImpl) invalidate(code string) {
	if s.calculator != nil {
		s.calculator.InvalidateProduct(code)
	}
}

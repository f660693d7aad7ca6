// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"

	"github.com/AJLandry1000000000/flower-shop/config"
	"github.com/AJLandry1000000000/flower-shop/internal/circuitbreaker"
	"github.com/AJLandry1000000000/flower-shop/internal/repository"
)

// StoreComponents holds the product store, the optional order history store
// and what is needed to probe and release them.
type StoreComponents struct {
	Products        repository.ProductRepository
	ProductsBreaker *circuitbreaker.CircuitBreaker
	History         repository.OrderHistoryRepository
	HistoryBreaker  *circuitbreaker.CircuitBreaker
	Checkers        map[string]repository.HealthChecker

	closers []func(context.Context) error
}

// Close releases every connection opened by InitializeStores, last opened first.
// It returns the first error; later failures are only logged.
func (s *StoreComponents) Close(ctx context.Context) error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		err := s.closers[i](ctx)
		switch {
		case err == nil:
		case first == nil:
			first = err
		default:
			log.Warn().Err(err).Msg("Failed to close store")
		}
	}
	s.closers = nil
	return first
}

func newBreaker(cfg config.CircuitBreakerConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.FailureThreshold,
		SuccessThreshold: cfg.SuccessThreshold,
		Timeout:          cfg.Timeout,
		Name:             name,
		IsFailure:        repository.IsStoreFailure,
	})
}

// InitializeStores connects the configured stores.
// A MongoDB outage only disables order history, unless MongoDB also holds the
// products, in which case it is an error.
func InitializeStores(ctx context.Context, cfg config.Config) (*StoreComponents, error) {
	stores := &StoreComponents{Checkers: make(map[string]repository.HealthChecker)}

	var mongo *repository.MongoDB
	if cfg.Database.Enabled {
		db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
		switch {
		case err != nil && cfg.Catalog.ProductStore == config.StoreMongoDB:
			return nil, errors.Wrap(err, "connect product store")
		case err != nil:
			log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without order history")
		default:
			log.Info().Str("database", cfg.Database.DatabaseName).Msg("Connected to MongoDB")
			mongo = db
			stores.closers = append(stores.closers, db.Close)
			stores.Checkers["mongodb"] = db

			if err := db.SetHistoryTTL(ctx, cfg.Database.HistoryTTL); err != nil {
				log.Warn().Err(err).Msg("Failed to set order history TTL index")
			}
		}
	}

	var products repository.ProductRepository
	switch cfg.Catalog.ProductStore {
	case config.StoreMongoDB:
		if mongo == nil {
			return nil, errors.Wrap(repository.ErrStoreNotConfigured, "product store mongodb needs MongoDB enabled")
		}
		products = repository.NewMongoProductRepository(mongo)
	case config.StorePostgres:
		pool, err := repository.NewPostgresPool(ctx, cfg.Postgres.DSN, repository.DefaultPostgresConfig())
		if err != nil {
			_ = stores.Close(ctx)
			return nil, errors.Wrap(err, "connect product store")
		}
		stores.closers = append(stores.closers, func(context.Context) error {
			pool.Close()
			return nil
		})

		pg := repository.NewPostgresProductRepository(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			_ = stores.Close(ctx)
			return nil, errors.Wrap(err, "prepare product schema")
		}
		log.Info().Msg("Connected to PostgreSQL")
		stores.Checkers["postgres"] = pg
		products = pg
	default:
		products = repository.NewMemoryProductRepository()
	}

	if cfg.Catalog.ProductStore == config.StoreMemory {
		stores.Products = products
	} else {
		stores.ProductsBreaker = newBreaker(cfg.CircuitBreaker, cfg.Catalog.ProductStore+"-products")
		stores.Products = repository.NewProductRepositoryWithCircuitBreaker(products, stores.ProductsBreaker)
	}

	if mongo != nil {
		stores.HistoryBreaker = newBreaker(cfg.CircuitBreaker, "mongodb-order-history")
		stores.History = repository.NewOrderHistoryRepositoryWithCircuitBreaker(
			repository.NewMongoOrderHistoryRepository(mongo),
			stores.HistoryBreaker,
		)
	}

	return stores, nil
}

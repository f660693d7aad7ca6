package app

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"

	"github.com/AJLandry1000000000/flower-shop/config"
	"github.com/AJLandry1000000000/flower-shop/internal/catalog"
	"github.com/AJLandry1000000000/flower-shop/internal/logger"
	"github.com/AJLandry1000000000/flower-shop/internal/service"
)

const seedTimeout = 30 * time.Second

// newCatalogLoader returns the seed catalog sources in priority order:
// S3, then the local file, then the built-in products.
func newCatalogLoader(ctx context.Context, cfg config.CatalogConfig) catalog.Loader {
	l := logger.Logger()

	var loaders []catalog.Loader
	if cfg.S3Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Key, l)
		if err != nil {
			log.Warn().Err(err).Msg("S3 catalog disabled")
		} else {
			loaders = append(loaders, s3Loader)
		}
	}
	if cfg.File != "" {
		loaders = append(loaders, catalog.NewFileLoader(cfg.File, l))
	}
	loaders = append(loaders, catalog.DefaultLoader{})

	return catalog.NewFallbackLoader(l, loaders...)
}

// seedCatalog adds the catalog products missing from the store.
func seedCatalog(ctx context.Context, loader catalog.Loader, products service.ProductService) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	items, err := loader.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}
	if _, err := products.Seed(ctx, items); err != nil {
		return errors.Wrap(err, "seed catalog")
	}
	return nil
}

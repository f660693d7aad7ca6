package catalog

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// FileLoader reads a YAML catalog from the local file system.
type FileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader creates a loader for the YAML catalog at path.
func NewFileLoader(path string, logger zerolog.Logger) *FileLoader {
	return &FileLoader{
		path:   path,
		logger: logger.With().Str("component", "file-catalog-loader").Logger(),
	}
}

// Load opens and parses the catalog file.
func (l *FileLoader) Load(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "open catalog %s", l.path)
	}
	defer func() {
		_ = f.Close()
	}()

	products, err := Parse(f)
	if err != nil {
		l.logger.Error().Err(err).Str("file_path", l.path).Msg("failed to parse catalog file")
		return nil, errors.Wrapf(err, "catalog %s", l.path)
	}

	l.logger.Info().Str("file_path", l.path).Int("products", len(products)).Msg("catalog loaded from file")
	return products, nil
}

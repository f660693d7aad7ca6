package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// productsSchema mirrors the catalog table: bundles is a JSON array of sizes,
// prices a JSON object of size to decimal string.
const productsSchema = `
CREATE TABLE IF NOT EXISTS products (
	code       TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	bundles    JSONB NOT NULL,
	prices     JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresProductRepository stores the catalog in the products table.
type PostgresProductRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresProductRepository creates a PostgreSQL-backed product repository.
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{
		pool:   pool,
		logger: log.With().Str("repository", "products").Str("store", "postgres").Logger(),
	}
}

// EnsureSchema creates the products table when it does not exist.
func (r *PostgresProductRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, productsSchema); err != nil {
		return errors.Wrap(err, "create products table")
	}
	return nil
}

// HealthCheck pings the database.
func (r *PostgresProductRepository) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.pool.Ping(ctx)
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var (
		p          model.Product
		bundlesRaw []byte
		pricesRaw  []byte
	)
	if err := row.Scan(&p.Code, &p.Name, &bundlesRaw, &pricesRaw); err != nil {
		return model.Product{}, err
	}

	if err := json.Unmarshal(bundlesRaw, &p.BundleSizes); err != nil {
		return model.Product{}, errors.Wrapf(err, "product %q: decode bundles", p.Code)
	}

	// decimal accepts both "12.99" and 12.99, so rows seeded with numeric
	// prices load as well
	var prices map[string]decimal.Decimal
	if err := json.Unmarshal(pricesRaw, &prices); err != nil {
		return model.Product{}, errors.Wrapf(err, "product %q: decode prices", p.Code)
	}
	p.Prices = make(map[int]decimal.Decimal, len(prices))
	for key, price := range prices {
		size, err := strconv.Atoi(key)
		if err != nil {
			return model.Product{}, errors.Wrapf(err, "product %q: bundle size %q", p.Code, key)
		}
		p.Prices[size] = price
	}

	return p.Normalized(), nil
}

// GetByCode returns the product or ErrProductNotFound.
func (r *PostgresProductRepository) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	const query = `SELECT code, name, bundles, prices FROM products WHERE code = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		r.logger.Debug().Str("product_code", code).Msg("product not found")
		return nil, errors.Wrapf(ErrProductNotFound, "code %q", code)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("product_code", code).Msg("failed to query product")
		return nil, errors.Wrap(err, "query product")
	}
	return &p, nil
}

// List returns products ordered by code. A limit of zero or less returns all.
func (r *PostgresProductRepository) List(ctx context.Context, limit int) ([]model.Product, error) {
	query := `SELECT code, name, bundles, prices FROM products ORDER BY code`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query products")
		return nil, errors.Wrap(err, "query products")
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, errors.Wrap(err, "scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate products")
	}

	return products, nil
}

// Upsert inserts or replaces the product row.
func (r *PostgresProductRepository) Upsert(ctx context.Context, product model.Product) error {
	p := product.Normalized()

	bundles, err := json.Marshal(p.BundleSizes)
	if err != nil {
		return errors.Wrap(err, "encode bundles")
	}
	prices := make(map[string]string, len(p.Prices))
	for size, price := range p.Prices {
		prices[strconv.Itoa(size)] = price.String()
	}
	pricesRaw, err := json.Marshal(prices)
	if err != nil {
		return errors.Wrap(err, "encode prices")
	}

	const query = `
		INSERT INTO products (code, name, bundles, prices, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (code) DO UPDATE
		SET name = EXCLUDED.name, bundles = EXCLUDED.bundles,
		    prices = EXCLUDED.prices, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, p.Code, p.Name, bundles, pricesRaw); err != nil {
		r.logger.Error().Err(err).Str("product_code", p.Code).Msg("failed to upsert product")
		return errors.Wrap(err, "upsert product")
	}
	return nil
}

// Delete removes the product row or returns ErrProductNotFound.
func (r *PostgresProductRepository) Delete(ctx context.Context, code string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE code = $1`, code)
	if err != nil {
		r.logger.Error().Err(err).Str("product_code", code).Msg("failed to delete product")
		return errors.Wrap(err, "delete product")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(ErrProductNotFound, "code %q", code)
	}
	return nil
}

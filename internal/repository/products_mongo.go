package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// ProductDocument is the MongoDB representation of a product.
// Prices are decimal strings keyed by bundle size, as BSON keys must be strings.
type ProductDocument struct {
	Code      string            `bson:"code"`
	Name      string            `bson:"name"`
	Bundles   []int             `bson:"bundles"`
	Prices    map[string]string `bson:"prices"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

func newProductDocument(p model.Product) ProductDocument {
	prices := make(map[string]string, len(p.Prices))
	for size, price := range p.Prices {
		prices[strconv.Itoa(size)] = price.String()
	}
	return ProductDocument{
		Code:      p.Code,
		Name:      p.Name,
		Bundles:   p.BundleSizes,
		Prices:    prices,
		UpdatedAt: time.Now().UTC(),
	}
}

// Product converts the document back to the domain value.
func (d ProductDocument) Product() (model.Product, error) {
	prices := make(map[int]decimal.Decimal, len(d.Prices))
	for key, raw := range d.Prices {
		size, err := strconv.Atoi(key)
		if err != nil {
			return model.Product{}, errors.Wrapf(err, "product %q: bundle size %q", d.Code, key)
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return model.Product{}, errors.Wrapf(err, "product %q: price %q", d.Code, raw)
		}
		prices[size] = price
	}
	return model.Product{
		Code:        d.Code,
		Name:        d.Name,
		BundleSizes: d.Bundles,
		Prices:      prices,
	}.Normalized(), nil
}

// MongoProductRepository stores the catalog in the products collection.
type MongoProductRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewMongoProductRepository creates a MongoDB-backed product repository.
func NewMongoProductRepository(db *MongoDB) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Products,
		logger:     log.With().Str("repository", "products").Str("store", "mongodb").Logger(),
	}
}

// GetByCode returns the product or ErrProductNotFound.
func (r *MongoProductRepository) GetByCode(ctx context.Context, code string) (*model.Product, error) {
	var doc ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrapf(ErrProductNotFound, "code %q", code)
	}
	if err != nil {
		r.logger.Error().Err(err).Str("product_code", code).Msg("failed to query product")
		return nil, errors.Wrap(err, "find product")
	}

	p, err := doc.Product()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns products ordered by code. A limit of zero or less returns all.
func (r *MongoProductRepository) List(ctx context.Context, limit int) ([]model.Product, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query products")
		return nil, errors.Wrap(err, "find products")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	products := make([]model.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.Product()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Upsert replaces the product document, creating it when missing.
func (r *MongoProductRepository) Upsert(ctx context.Context, product model.Product) error {
	doc := newProductDocument(product.Normalized())

	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"code": doc.Code},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_code", doc.Code).Msg("failed to upsert product")
		return errors.Wrap(err, "upsert product")
	}
	return nil
}

// Delete removes the product or returns ErrProductNotFound.
func (r *MongoProductRepository) Delete(ctx context.Context, code string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"code": code})
	if err != nil {
		r.logger.Error().Err(err).Str("product_code", code).Msg("failed to delete product")
		return errors.Wrap(err, "delete product")
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(ErrProductNotFound, "code %q", code)
	}
	return nil
}

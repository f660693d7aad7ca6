package repository

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

// OrderRecordDocument is the MongoDB representation of an order history entry.
type OrderRecordDocument struct {
	ID                string         `bson:"_id"`
	Timestamp         time.Time      `bson:"timestamp"`
	RequestID         string         `bson:"request_id,omitempty"`
	ProductCode       string         `bson:"product_code"`
	RequestedQuantity int            `bson:"requested_quantity"`
	Feasible          bool           `bson:"feasible"`
	TotalBundles      int            `bson:"total_bundles"`
	TotalCost         string         `bson:"total_cost"`
	Bundles           map[string]int `bson:"bundles,omitempty"`
	Summary           string         `bson:"summary"`
	DurationMicros    int64          `bson:"duration_us"`
}

func newOrderRecordDocument(r *model.OrderRecord) *OrderRecordDocument {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	return &OrderRecordDocument{
		ID:                r.ID,
		Timestamp:         r.Timestamp,
		RequestID:         r.RequestID,
		ProductCode:       r.ProductCode,
		RequestedQuantity: r.RequestedQuantity,
		Feasible:          r.Feasible,
		TotalBundles:      r.TotalBundles,
		TotalCost:         r.TotalCost,
		Bundles:           r.Bundles,
		Summary:           r.Summary,
		DurationMicros:    r.DurationMicros,
	}
}

func (d *OrderRecordDocument) record() model.OrderRecord {
	return model.OrderRecord{
		ID:                d.ID,
		Timestamp:         d.Timestamp,
		RequestID:         d.RequestID,
		ProductCode:       d.ProductCode,
		RequestedQuantity: d.RequestedQuantity,
		Feasible:          d.Feasible,
		TotalBundles:      d.TotalBundles,
		TotalCost:         d.TotalCost,
		Bundles:           d.Bundles,
		Summary:           d.Summary,
		DurationMicros:    d.DurationMicros,
	}
}

// MongoOrderHistoryRepository stores order records in the order_history collection.
type MongoOrderHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderHistoryRepository creates a MongoDB-backed history repository.
func NewMongoOrderHistoryRepository(db *MongoDB) *MongoOrderHistoryRepository {
	return &MongoOrderHistoryRepository{
		collection: db.OrderHistory,
	}
}

// Insert stores one record, assigning an id and timestamp when missing.
func (r *MongoOrderHistoryRepository) Insert(ctx context.Context, record *model.OrderRecord) error {
	if _, err := r.collection.InsertOne(ctx, newOrderRecordDocument(record)); err != nil {
		return errors.Wrap(err, "insert order record")
	}
	return nil
}

// InsertMany stores records in bulk.
func (r *MongoOrderHistoryRepository) InsertMany(ctx context.Context, records []*model.OrderRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, len(records))
	for i, record := range records {
		docs[i] = newOrderRecordDocument(record)
	}

	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return errors.Wrap(err, "insert order records")
	}
	return nil
}

func historyFilter(q model.HistoryQuery) bson.M {
	filter := bson.M{}

	if q.ProductCode != "" {
		filter["product_code"] = q.ProductCode
	}
	if q.RequestID != "" {
		filter["request_id"] = q.RequestID
	}
	if q.FeasibleOnly {
		filter["feasible"] = true
	}
	if q.Since != nil || q.Until != nil {
		timeFilter := bson.M{}
		if q.Since != nil {
			timeFilter["$gte"] = *q.Since
		}
		if q.Until != nil {
			timeFilter["$lte"] = *q.Until
		}
		filter["timestamp"] = timeFilter
	}

	return filter
}

// Find returns matching records, newest first.
func (r *MongoOrderHistoryRepository) Find(ctx context.Context, q model.HistoryQuery) ([]model.OrderRecord, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if q.Limit > 0 {
		findOptions.SetLimit(int64(q.Limit))
	}
	if q.Skip > 0 {
		findOptions.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, historyFilter(q), findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find order records")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*OrderRecordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode order records")
	}

	records := make([]model.OrderRecord, len(docs))
	for i, doc := range docs {
		records[i] = doc.record()
	}
	return records, nil
}

// Count returns the number of records matching the query filters.
func (r *MongoOrderHistoryRepository) Count(ctx context.Context, q model.HistoryQuery) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, historyFilter(q))
	if err != nil {
		return 0, errors.Wrap(err, "count order records")
	}
	return n, nil
}

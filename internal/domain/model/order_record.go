package model

import (
	"strconv"
	"time"
)

// OrderRecord is the history entry stored for every computed order line.
type OrderRecord struct {
	ID                string         `json:"id"`
	Timestamp         time.Time      `json:"timestamp"`
	RequestID         string         `json:"request_id,omitempty"`
	ProductCode       string         `json:"product_code"`
	RequestedQuantity int            `json:"requested_quantity"`
	Feasible          bool           `json:"feasible"`
	TotalBundles      int            `json:"total_bundles"`
	TotalCost         string         `json:"total_cost"`
	Bundles           map[string]int `json:"bundles,omitempty"`
	Summary           string         `json:"summary"`
	DurationMicros    int64          `json:"duration_us"`
}

// NewOrderRecord builds the history entry for a breakdown.
// Bundle sizes become string keys so the record maps cleanly onto documents.
func NewOrderRecord(requestID string, b Breakdown, took time.Duration) *OrderRecord {
	bundles := make(map[string]int, len(b.Bundles))
	for _, line := range b.Bundles {
		bundles[strconv.Itoa(line.Size)] = line.Count
	}
	return &OrderRecord{
		Timestamp:         time.Now().UTC(),
		RequestID:         requestID,
		ProductCode:       b.ProductCode,
		RequestedQuantity: b.RequestedQuantity,
		Feasible:          b.Feasible(),
		TotalBundles:      b.TotalBundles,
		TotalCost:         b.TotalCost.StringFixed(2),
		Bundles:           bundles,
		Summary:           b.Summary(),
		DurationMicros:    took.Microseconds(),
	}
}

// HistoryQuery filters order history lookups.
type HistoryQuery struct {
	ProductCode  string
	RequestID    string
	FeasibleOnly bool
	Since        *time.Time
	Until        *time.Time
	Limit        int
	Skip         int
}

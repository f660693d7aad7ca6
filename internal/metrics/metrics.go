// Package metrics provides Prometheus metrics collection for the flower shop.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Calculation outcomes used as the status label.
const (
	StatusFeasible   = "feasible"
	StatusNoSolution = "no_solution"
	StatusError      = "error"
)

// Order history outcomes used as the result label.
const (
	HistoryWritten = "written"
	HistoryDropped = "dropped"
	HistoryError   = "error"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BundleCalculationsTotal counts bundle calculations by outcome.
	BundleCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bundle_calculations_total",
			Help: "Total number of bundle calculations",
		},
		[]string{"status"},
	)

	// BundleCalculationDuration tracks how long uncached calculations take.
	BundleCalculationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bundle_calculation_duration_seconds",
			Help:    "Bundle calculation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1.0},
		},
	)

	// RequestedQuantity tracks the quantities customers order.
	RequestedQuantity = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_requested_quantity",
			Help:    "Requested quantity per order line",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		},
	)

	// OrderLinesTotal counts processed order lines by product.
	OrderLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_lines_total",
			Help: "Total number of processed order lines",
		},
		[]string{"product_code", "status"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// HistoryRecordsTotal counts order history records by outcome.
	HistoryRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "history_records_total",
			Help: "Order history records by outcome (written, dropped, error)",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordBundleCalculation records the outcome of one uncached calculation.
func RecordBundleCalculation(duration time.Duration, status string) {
	BundleCalculationDuration.Observe(duration.Seconds())
	BundleCalculationsTotal.WithLabelValues(status).Inc()
}

// RecordOrderLine records one processed order line.
func RecordOrderLine(productCode string, quantity int, status string) {
	RequestedQuantity.Observe(float64(quantity))
	OrderLinesTotal.WithLabelValues(productCode, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordHistory counts a history record outcome.
func RecordHistory(result string) {
	HistoryRecordsTotal.WithLabelValues(result).Inc()
}

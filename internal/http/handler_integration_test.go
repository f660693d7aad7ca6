//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AJLandry1000000000/flower-shop/internal/catalog"
	"github.com/AJLandry1000000000/flower-shop/internal/circuitbreaker"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/middleware"
	"github.com/AJLandry1000000000/flower-shop/internal/repository"
	"github.com/AJLandry1000000000/flower-shop/internal/service"
	"github.com/AJLandry1000000000/flower-shop/internal/testutil"
)

type integrationStack struct {
	router   *gin.Engine
	recorder *service.AsyncRecorder
	db       *repository.MongoDB
}

// setupIntegrationStack wires the Mongo-backed stack the server runs with.
func setupIntegrationStack(t *testing.T, cfg RouterConfig) *integrationStack {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	productBreaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 3, SuccessThreshold: 1, Timeout: time.Second,
		Name: "products", IsFailure: repository.IsStoreFailure,
	})
	historyBreaker := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 3, SuccessThreshold: 1, Timeout: time.Second,
		Name: "order-history", IsFailure: repository.IsStoreFailure,
	})

	calculator := service.NewBundleCalculatorService(service.WithCache(100, 5*time.Minute))
	t.Cleanup(calculator.Stop)

	products := service.NewProductService(
		repository.NewProductRepositoryWithCircuitBreaker(repository.NewMongoProductRepository(db), productBreaker),
		calculator,
	)
	_, err = products.Seed(ctx, catalog.Defaults())
	require.NoError(t, err)

	history := service.NewHistoryService(
		repository.NewOrderHistoryRepositoryWithCircuitBreaker(repository.NewMongoOrderHistoryRepository(db), historyBreaker),
	)
	recorder := service.NewAsyncRecorder(history, service.DefaultAsyncRecorderConfig())
	t.Cleanup(recorder.Stop)

	orders := service.NewOrderService(products, calculator, service.WithRecorder(recorder))

	healthHandler := NewHealthHandler()
	healthHandler.RegisterChecker("mongodb", db)
	healthHandler.RegisterCircuitBreaker("products", productBreaker)
	healthHandler.RegisterCircuitBreaker("order_history", historyBreaker)

	return &integrationStack{
		router:   NewRouter(NewOrdersHandler(orders, history), NewProductsHandler(products), healthHandler, cfg),
		recorder: recorder,
		db:       db,
	}
}

func postOrder(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIntegration_CreateOrder_AllScenarios(t *testing.T) {
	stack := setupIntegrationStack(t, DefaultRouterConfig())

	testCases := []struct {
		name     string
		code     string
		quantity int
		expected string
	}{
		{name: "exact bundle", code: "R12", quantity: 10, expected: "10 R12 $12.99 : 1 x 10 $12.99"},
		{name: "two sizes", code: "R12", quantity: 15, expected: "15 R12 $19.98 : 1 x 10 $12.99, 1 x 5 $6.99"},
		{name: "greedy would fail", code: "L09", quantity: 15, expected: "15 L09 $41.90 : 1 x 9 $24.95, 1 x 6 $16.95"},
		{name: "mixed sizes", code: "L09", quantity: 24, expected: "24 L09 $66.85 : 2 x 9 $49.90, 1 x 6 $16.95"},
		{name: "three sizes", code: "T58", quantity: 277, expected: "277 T58 $524.51 : 29 x 9 $492.71, 2 x 5 $19.90, 2 x 3 $11.90"},
		{name: "no combination", code: "R12", quantity: 7, expected: "7 R12 $0 : No bundle combination found for 7 R12"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := `[{"code": "` + tc.code + `", "quantity": ` + strconv.Itoa(tc.quantity) + `}]`
			w := postOrder(stack.router, body, nil)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var order dto.OrderResponse
			decodeData(t, w, &order)
			assert.Equal(t, []string{tc.expected}, order.Results)
		})
	}
}

func TestIntegration_OrderHistory(t *testing.T) {
	stack := setupIntegrationStack(t, DefaultRouterConfig())

	w := postOrder(stack.router, `[{"code": "R12", "quantity": 15}, {"code": "R12", "quantity": 7}]`,
		map[string]string{middleware.RequestIDHeader: "history-req-1"})
	require.Equal(t, http.StatusOK, w.Code)

	var page dto.HistoryResponse
	require.Eventually(t, func() bool {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/history?request_id=history-req-1", nil)
		rec := httptest.NewRecorder()
		stack.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			return false
		}
		var resp struct {
			Data dto.HistoryResponse `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			return false
		}
		page = resp.Data
		return page.Total == 2
	}, 5*time.Second, 50*time.Millisecond)

	assert.Len(t, page.Records, 2)
	for _, r := range page.Records {
		assert.Equal(t, "R12", r.ProductCode)
		assert.Equal(t, "history-req-1", r.RequestID)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/history?request_id=history-req-1&feasible_only=true", nil)
	rec := httptest.NewRecorder()
	stack.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &page)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "15 R12 $19.98 : 1 x 10 $12.99, 1 x 5 $6.99", page.Records[0].Summary)
}

func TestIntegration_RateLimiting(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 3
	cfg.RateWindow = time.Minute
	stack := setupIntegrationStack(t, cfg)

	for i := 0; i < 3; i++ {
		w := postOrder(stack.router, `[{"code": "R12", "quantity": 10}]`, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := postOrder(stack.router, `[{"code": "R12", "quantity": 10}]`, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestIntegration_Idempotency(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.EnableIdempotency = true
	stack := setupIntegrationStack(t, cfg)

	headers := map[string]string{middleware.IdempotencyKeyHeader: "order-key-1"}
	first := postOrder(stack.router, `[{"code": "T58", "quantity": 13}]`, headers)
	require.Equal(t, http.StatusOK, first.Code)

	second := postOrder(stack.router, `[{"code": "T58", "quantity": 13}]`, headers)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestIntegration_Readiness(t *testing.T) {
	stack := setupIntegrationStack(t, DefaultRouterConfig())

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	stack.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	assert.Contains(t, w.Body.String(), `"products_circuit"`)

	require.NoError(t, stack.db.Close(context.Background()))

	w = httptest.NewRecorder()
	stack.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

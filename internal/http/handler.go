package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/i18n"
	"github.com/AJLandry1000000000/flower-shop/internal/middleware"
	"github.com/AJLandry1000000000/flower-shop/internal/service"
)

// OrdersHandler provides HTTP handlers for order routes.
type OrdersHandler struct {
	orders  service.OrderService
	history service.HistoryService
}

// NewOrdersHandler creates a new OrdersHandler. A nil history disables the history endpoint.
func NewOrdersHandler(orders service.OrderService, history service.HistoryService) *OrdersHandler {
	return &OrdersHandler{
		orders:  orders,
		history: history,
	}
}

// RegisterRoutes registers the order routes on rg.
func (h *OrdersHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.CreateOrder)
	rg.GET("/orders/history", h.ListHistory)
}

// CreateOrder handles POST /api/v1/orders requests.
//
// @Summary      Create an order
// @Description  Splits every order line into the fewest bundles of its product and prices them. Lines that cannot be bundled exactly are reported as "No bundle combination found". Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body []dto.OrderLine true "Order lines"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderResponse} "Order breakdowns"
// @Failure      400 {object} dto.ErrorResponse "Invalid order request or order format"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Product store unavailable"
// @Router       /api/v1/orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	raw, err := DecodeJSON[[]json.RawMessage](c.Request.Body)
	if err != nil || len(*raw) == 0 {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidOrderRequest, err)
		return
	}

	lines := make([]dto.OrderLine, len(*raw))
	for i, item := range *raw {
		if err := json.Unmarshal(item, &lines[i]); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidOrderFormat, errors.Wrapf(err, "order line %d", i+1))
			return
		}
	}

	breakdowns, err := h.orders.Process(c.Request.Context(), middleware.GetRequestID(c), lines)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	message := i18n.GetTranslator().Translate(i18n.SuccessKeyOrderCreated, i18n.GetLocale(c))
	builder.SuccessOK(dto.NewOrderResponse(message, breakdowns))
}

// ListHistory handles GET /api/v1/orders/history requests.
//
// @Summary      List order history
// @Description  Returns processed order lines, newest first
// @Tags         Orders
// @Produce      json
// @Param        product_code  query string false "Filter by product code"
// @Param        request_id    query string false "Filter by request ID"
// @Param        feasible_only query bool   false "Only lines that could be bundled"
// @Param        since         query string false "RFC 3339 lower bound"
// @Param        until         query string false "RFC 3339 upper bound"
// @Param        limit         query int    false "Page size (default 50, max 500)"
// @Param        skip          query int    false "Records to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.HistoryResponse} "Order history"
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Order history is not enabled"
// @Router       /api/v1/orders/history [get]
func (h *OrdersHandler) ListHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.history == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyHistoryDisabled, nil)
		return
	}

	query, err := parseHistoryQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	query = service.ClampHistoryQuery(query)

	ctx := c.Request.Context()
	records, err := h.history.Query(ctx, query)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	total, err := h.history.Count(ctx, query)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	if records == nil {
		records = []model.OrderRecord{}
	}
	builder.SuccessOK(dto.HistoryResponse{
		Records: records,
		Total:   total,
		Limit:   query.Limit,
		Skip:    query.Skip,
	})
}

func parseHistoryQuery(c *gin.Context) (model.HistoryQuery, error) {
	q := model.HistoryQuery{
		ProductCode: c.Query("product_code"),
		RequestID:   c.Query("request_id"),
	}

	var err error
	if v := c.Query("feasible_only"); v != "" {
		if q.FeasibleOnly, err = strconv.ParseBool(v); err != nil {
			return q, errors.Wrap(err, "feasible_only")
		}
	}
	if v := c.Query("limit"); v != "" {
		if q.Limit, err = strconv.Atoi(v); err != nil {
			return q, errors.Wrap(err, "limit")
		}
	}
	if v := c.Query("skip"); v != "" {
		if q.Skip, err = strconv.Atoi(v); err != nil {
			return q, errors.Wrap(err, "skip")
		}
	}
	if q.Since, err = parseTimeParam(c, "since"); err != nil {
		return q, err
	}
	if q.Until, err = parseTimeParam(c, "until"); err != nil {
		return q, err
	}
	return q, nil
}

func parseTimeParam(c *gin.Context, name string) (*time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &t, nil
}

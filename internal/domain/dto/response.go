package dto

import (
	"net/http"
	"time"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a backing store is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (OrderResponse for the orders endpoint)
	Data any `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Invalid order format!"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// WithDetails attaches field-level details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// OrderResponse is the payload of a processed order.
// @Description Summary lines and breakdowns of every order line, in request order
type OrderResponse struct {
	Message string            `json:"message" example:"Order was successfully created!"`
	Results []string          `json:"results" example:"15 R12 $19.98 : 1 x 10 $12.99, 1 x 5 $6.99"`
	Orders  []model.Breakdown `json:"orders"`
} // @name OrderResponse

// NewOrderResponse builds the response for the given breakdowns.
func NewOrderResponse(message string, breakdowns []model.Breakdown) OrderResponse {
	results := make([]string, len(breakdowns))
	for i, b := range breakdowns {
		results[i] = b.Summary()
	}
	return OrderResponse{
		Message: message,
		Results: results,
		Orders:  breakdowns,
	}
}

// ProductListResponse lists catalog products.
// @Description Products in the catalog, ordered by code
type ProductListResponse struct {
	Products []model.Product `json:"products"`
	Count    int             `json:"count" example:"3"`
} // @name ProductListResponse

// HistoryResponse is a page of order history.
// @Description Order history records, newest first
type HistoryResponse struct {
	Records []model.OrderRecord `json:"records"`
	Total   int64               `json:"total" example:"42"`
	Limit   int                 `json:"limit" example:"50"`
	Skip    int                 `json:"skip" example:"0"`
} // @name HistoryResponse

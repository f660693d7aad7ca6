// Package i18n provides internationalization support for the flower shop.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates a backing store is down or disabled.
	ErrKeyServiceUnavailable = "error.service_unavailable"
	// ErrKeyInvalidOrderRequest indicates an empty or non-array order.
	ErrKeyInvalidOrderRequest = "error.order.invalid_request"
	// ErrKeyInvalidOrderFormat indicates a malformed order line.
	ErrKeyInvalidOrderFormat = "error.order.invalid_format"
	// ErrKeyProductNotFound takes the product code as its argument.
	ErrKeyProductNotFound = "error.product.not_found"
	// ErrKeyInvalidProduct indicates a product descriptor that cannot be stored.
	ErrKeyInvalidProduct = "error.product.invalid"
	// ErrKeyHistoryDisabled indicates that order history is not enabled.
	ErrKeyHistoryDisabled = "error.history.disabled"
)

// Success message translation keys.
const (
	// SuccessKeyOrderCreated indicates a processed order.
	SuccessKeyOrderCreated = "success.order_created"
	// SuccessKeyProductSaved indicates a stored product.
	SuccessKeyProductSaved = "success.product_saved"
)

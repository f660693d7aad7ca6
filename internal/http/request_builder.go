package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/i18n"
	"github.com/AJLandry1000000000/flower-shop/internal/middleware"
)

// MaxBodyBytes caps the JSON bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// ErrTrailingData is returned when a body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// RequestBuilder binds request bodies.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a new request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind decodes the JSON body into v and applies its binding tags.
func (b *RequestBuilder) Bind(v any) error {
	return b.c.ShouldBindJSON(v)
}

// BuildRequest binds the JSON body of the request into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeJSON reads exactly one JSON value of at most MaxBodyBytes from r.
func DecodeJSON[T any](r io.Reader) (*T, error) {
	dec := json.NewDecoder(io.LimitReader(r, MaxBodyBytes))

	var v T
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "decode body")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return &v, nil
}

// ResponseBuilder writes the success and error envelopes of the API.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success wraps data in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	b.c.JSON(statusCode, dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	})
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// Error aborts with the message stored under messageKey in the caller's locale.
// A non-nil err is attached to the context for ErrorHandler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.ErrorWithMessage(statusCode, message, err)
}

// ErrorWithArgs is Error for messages that take format arguments.
func (b *ResponseBuilder) ErrorWithArgs(statusCode int, messageKey string, err error, args ...any) {
	message := i18n.GetTranslator().Translatef(messageKey, i18n.GetLocale(b.c), args...)
	b.ErrorWithMessage(statusCode, message, err)
}

// ErrorWithMessage aborts with an already rendered message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}
	resp := dto.NewError(dto.ErrCodeFromStatus(statusCode), message).
		WithRequestID(middleware.GetRequestID(b.c))
	b.c.AbortWithStatusJSON(statusCode, resp)
}

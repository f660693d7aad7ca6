package http

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/AJLandry1000000000/flower-shop/internal/circuitbreaker"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/domain/model"
	"github.com/AJLandry1000000000/flower-shop/internal/i18n"
	"github.com/AJLandry1000000000/flower-shop/internal/repository"
	"github.com/AJLandry1000000000/flower-shop/internal/service"
)

// writeServiceError maps a service error to its status code and translated message.
func writeServiceError(builder *ResponseBuilder, err error) {
	var notFound *service.ProductNotFoundError
	var validation *dto.ValidationError

	switch {
	case errors.As(err, &notFound):
		builder.ErrorWithArgs(http.StatusNotFound, i18n.ErrKeyProductNotFound, err, notFound.Code)
	case errors.Is(err, service.ErrInvalidOrderRequest):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidOrderRequest, err)
	case errors.Is(err, service.ErrInvalidOrderFormat):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidOrderFormat, err)
	case errors.Is(err, model.ErrInvalidProduct), errors.As(err, &validation):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidProduct, err)
	case errors.Is(err, repository.ErrProductNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), errors.Is(err, repository.ErrStoreNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

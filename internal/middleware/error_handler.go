package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/AJLandry1000000000/flower-shop/internal/domain/dto"
	"github.com/AJLandry1000000000/flower-shop/internal/i18n"
	"github.com/AJLandry1000000000/flower-shop/internal/logger"
)

// ErrorHandler logs the errors handlers attached with c.Error. Client errors
// are logged at warn level and server errors at error level. A request that
// recorded an error without writing a response gets a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
		}

		log := logger.Logger()
		var event *zerolog.Event
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Strs("errors", c.Errors.Errors()).
			Msg("Request failed")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AJLandry1000000000/flower-shop/internal/logger"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantLevel  string
		wantBody   string
	}{
		{
			name: "unwritten error becomes 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("mongodb: connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantLevel:  "error",
			wantBody:   "internal_error",
		},
		{
			name: "client error keeps handler response",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("invalid order line"))
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
			},
			wantStatus: http.StatusBadRequest,
			wantLevel:  "warn",
			wantBody:   "invalid_request",
		},
		{
			name: "no errors is not logged",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter(&buf, "info", false)
			t.Cleanup(func() { logger.Init("error", false) })

			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.POST("/api/v1/orders", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/orders", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)

			if tt.wantLevel == "" {
				assert.Empty(t, buf.String())
				return
			}
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.EqualValues(t, tt.wantStatus, entry["status"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
		})
	}
}

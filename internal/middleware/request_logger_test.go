package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_levelForStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   zerolog.Level
	}{
		{name: "2xx returns info", statusCode: 200, expected: zerolog.InfoLevel},
		{name: "3xx returns info", statusCode: 301, expected: zerolog.InfoLevel},
		{name: "4xx returns warn", statusCode: 400, expected: zerolog.WarnLevel},
		{name: "404 returns warn", statusCode: 404, expected: zerolog.WarnLevel},
		{name: "5xx returns error", statusCode: 500, expected: zerolog.ErrorLevel},
		{name: "503 returns error", statusCode: 503, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, levelForStatus(tt.statusCode))
		})
	}
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{name: "successful request logs info", statusCode: http.StatusOK, wantLevel: "info"},
		{name: "client error logs warn", statusCode: http.StatusBadRequest, wantLevel: "warn"},
		{name: "server error logs error", statusCode: http.StatusInternalServerError, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			router := gin.New()
			router.Use(RequestID())
			router.Use(RequestLogger())
			router.GET("/api/v1/products/:code", func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/R12", nil)
			req.Header.Set(RequestIDHeader, "req-123")
			req.Header.Set("User-Agent", "test-agent")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "HTTP request", line["message"])
			assert.Equal(t, "req-123", line["request_id"])
			assert.Equal(t, "GET", line["method"])
			assert.Equal(t, "/api/v1/products/R12", line["path"])
			assert.Equal(t, "/api/v1/products/:code", line["route"])
			assert.Equal(t, float64(tt.statusCode), line["status_code"])
			assert.Equal(t, "test-agent", line["user_agent"])
		})
	}
}

package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AJLandry1000000000/flower-shop/internal/logger"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
)

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *IdempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration. The
// caller owns the cache and should Stop it on shutdown.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   NewIdempotencyCache(IdempotencyKeyTTL, DefaultIdempotencyMaxEntries),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// IdempotencyReplayedHeader marks a response served from the replay cache.
const IdempotencyReplayedHeader = "X-Idempotency-Replayed"

// Idempotency replays the stored response of a POST, PUT or PATCH request
// carrying an Idempotency-Key that was already answered with a 2xx. The key is
// scoped to the method, path and body, so reusing it for a different order
// computes that order.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !mutating(c.Request.Method) {
			c.Next()
			return
		}

		cacheKey := generateCacheKey(key, c.Request)

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			replay(c, cached)
			log := logger.Logger()
			log.Debug().
				Str("request_id", GetRequestID(c)).
				Str("path", c.Request.URL.Path).
				Msg("Replayed idempotent response")
			return
		}

		writer := &responseWriter{ResponseWriter: c.Writer, statusCode: http.StatusOK}
		c.Writer = writer

		c.Next()

		if writer.statusCode < 200 || writer.statusCode >= 300 {
			return
		}
		headers := make(map[string]string, len(writer.Header()))
		for k, v := range writer.Header() {
			if len(v) > 0 && !perResponseHeader(k) {
				headers[k] = v[0]
			}
		}
		cfg.Cache.Set(cacheKey, &cachedResponse{
			StatusCode: writer.statusCode,
			Headers:    headers,
			Body:       writer.body.Bytes(),
		})
	}
}

// perResponseHeader reports headers that belong to one exchange rather than to
// the stored body. The body is kept before compression, so the encoding
// headers are negotiated again by the gzip middleware on replay.
func perResponseHeader(key string) bool {
	switch http.CanonicalHeaderKey(key) {
	case RequestIDHeader, "Content-Encoding", "Content-Length", "Vary":
		return true
	}
	return false
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

func replay(c *gin.Context, cached *cachedResponse) {
	for k, v := range cached.Headers {
		c.Header(k, v)
	}
	c.Header(IdempotencyReplayedHeader, "true")
	contentType := cached.Headers["Content-Type"]
	if contentType == "" {
		contentType = gin.MIMEJSON + "; charset=utf-8"
	}
	c.Data(cached.StatusCode, contentType, cached.Body)
	c.Abort()
}

// generateCacheKey hashes the idempotency key with the request method, path
// and body. The body is restored for the handler.
func generateCacheKey(idempotencyKey string, req *http.Request) string {
	hasher := sha256.New()
	for _, part := range []string{idempotencyKey, req.Method, req.URL.Path} {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}

	if req.Body != nil {
		body, _ := io.ReadAll(io.LimitReader(req.Body, maxHashedBody))
		req.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), req.Body))
		hasher.Write(body)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

// maxHashedBody is larger than any body the API handlers accept.
const maxHashedBody = 2 << 20

// responseWriter tees the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body       bytes.Buffer
	statusCode int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Package middleware provides the HTTP middleware of the order API.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// uncompressedPaths are served as is. The Prometheus handler negotiates its
// own encoding and swagger assets are already minified.
var uncompressedPaths = []string{"/metrics", "/swagger/"}

// Compression gzips responses for clients that accept it.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(uncompressedPaths))
}

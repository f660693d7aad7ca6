package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of API routes registered under the versioned prefix.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

var (
	_ RouteGroup = (*OrdersHandler)(nil)
	_ RouteGroup = (*ProductsHandler)(nil)
)

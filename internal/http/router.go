package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/AJLandry1000000000/flower-shop/internal/metrics"
	"github.com/AJLandry1000000000/flower-shop/internal/middleware"
)

// APIPrefix is the prefix of every versioned API route.
const APIPrefix = "/api/v1"

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	EnableIdempotency bool
	RequestTimeout    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	// RateLimiter is used instead of building one from RateLimit and RateWindow,
	// so the owner can stop its cleanup goroutine on shutdown.
	RateLimiter *middleware.ShardedRateLimiter
	// IdempotencyCache is used when EnableIdempotency is set, for the same reason.
	IdempotencyCache *middleware.IdempotencyCache
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// NewRouter creates and configures the Gin router of the order API.
func NewRouter(orders *OrdersHandler, products *ProductsHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group(APIPrefix)
	configureAPIMiddleware(api, &cfg)

	var groups []RouteGroup
	if orders != nil {
		groups = append(groups, orders)
	}
	if products != nil {
		groups = append(groups, products)
	}
	for _, group := range groups {
		group.RegisterRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		api.Use(limiter.RateLimit())
	}

	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		idem := middleware.IdempotencyConfig{Cache: cfg.IdempotencyCache, TTL: middleware.IdempotencyKeyTTL, Enabled: true}
		if idem.Cache == nil {
			idem = middleware.DefaultIdempotencyConfig()
		}
		api.Use(middleware.Idempotency(idem))
	}
}

// Package app provides router configuration.
package app

import (
	"github.com/AJLandry1000000000/flower-shop/config"
	"github.com/AJLandry1000000000/flower-shop/internal/http"
	"github.com/AJLandry1000000000/flower-shop/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Orders        *http.OrdersHandler
	Products      *http.ProductsHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, stores *StoreComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	for name, checker := range stores.Checkers {
		healthHandler.RegisterChecker(name, checker)
	}
	healthHandler.RegisterCircuitBreaker("products", stores.ProductsBreaker)
	healthHandler.RegisterCircuitBreaker("order_history", stores.HistoryBreaker)

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		RequestTimeout:    cfg.Server.RequestTimeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}
	if cfg.Server.EnableIdempotency {
		routerCfg.IdempotencyCache = middleware.NewIdempotencyCache(middleware.IdempotencyKeyTTL, middleware.DefaultIdempotencyMaxEntries)
	}

	return &RouterComponents{
		Orders:        http.NewOrdersHandler(services.Orders, services.History),
		Products:      http.NewProductsHandler(services.Products),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

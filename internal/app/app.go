// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-faster/errors"
	"github.com/rs/zerolog/log"

	"github.com/AJLandry1000000000/flower-shop/config"
	"github.com/AJLandry1000000000/flower-shop/internal/http"
)

// App is the wired application: the router plus everything that has to be
// released when it stops.
type App struct {
	Router   *gin.Engine
	Stores   *StoreComponents
	Services *ServiceComponents

	cfg    config.Config
	routes *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	InitializeLogger(cfg.Log)

	stores, err := InitializeStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	services := InitializeServices(cfg, stores)

	if err := seedCatalog(ctx, newCatalogLoader(ctx, cfg.Catalog), services.Products); err != nil {
		log.Warn().Err(err).Msg("Product catalog not seeded")
	}

	routes := InitializeRouter(services, stores, cfg)

	return &App{
		Router:   http.NewRouter(routes.Orders, routes.Products, routes.HealthHandler, routes.Config),
		Stores:   stores,
		Services: services,
		cfg:      cfg,
		routes:   routes,
	}, nil
}

// Run serves HTTP until a shutdown signal arrives, then releases the app.
func (a *App) Run() error {
	runErr := NewServer(a.Router, a.cfg.Server).Run()

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout+defaultShutdownTimeout)
	defer cancel()
	closeErr := a.Close(ctx)

	if runErr != nil {
		return runErr
	}
	return closeErr
}

// Close drains the history writer and closes the stores.
func (a *App) Close(ctx context.Context) error {
	if a.routes.Config.RateLimiter != nil {
		a.routes.Config.RateLimiter.Stop()
	}
	if a.routes.Config.IdempotencyCache != nil {
		a.routes.Config.IdempotencyCache.Stop()
	}
	a.Services.Stop()
	return a.Stores.Close(ctx)
}

// Package app provides service initialization.
package app

import (
	"github.com/AJLandry1000000000/flower-shop/config"
	"github.com/AJLandry1000000000/flower-shop/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Calculator *service.BundleCalculatorService
	Products   service.ProductService
	// History and Recorder are nil when order history is disabled.
	History  service.HistoryService
	Recorder *service.AsyncRecorder
	Orders   service.OrderService
}

// InitializeServices builds the services on top of the stores.
func InitializeServices(cfg config.Config, stores *StoreComponents) *ServiceComponents {
	var opts []service.Option
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}
	calculator := service.NewBundleCalculatorService(opts...)

	components := &ServiceComponents{
		Calculator: calculator,
		Products:   service.NewProductService(stores.Products, calculator),
	}

	orderOpts := []service.OrderOption{service.WithMaxQuantity(cfg.Order.MaxQuantity)}
	if stores.History != nil {
		components.History = service.NewHistoryService(stores.History)
		components.Recorder = service.NewAsyncRecorder(components.History, service.AsyncRecorderConfig{
			BufferSize:   cfg.History.BufferSize,
			NumWorkers:   cfg.History.Workers,
			WriteTimeout: cfg.History.WriteTimeout,
		})
		orderOpts = append(orderOpts, service.WithRecorder(components.Recorder))
	}

	components.Orders = service.NewOrderService(components.Products, calculator, orderOpts...)
	return components
}

// Stop drains the history recorder and releases the calculator cache.
func (s *ServiceComponents) Stop() {
	if s.Recorder != nil {
		s.Recorder.Stop()
	}
	s.Calculator.Stop()
}

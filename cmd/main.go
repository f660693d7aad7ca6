// Package main is the entry point for the flower-shop order API.
//
// @title           Flower Shop API
// @version         1.0.0
// @description     API for breaking flower orders into the fewest bundles and pricing them.
//
//	Every order line is filled with the smallest number of bundles its product is sold in.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/AJLandry1000000000/flower-shop
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Orders
// @tag.description Order bundling and history
//
// @tag.name        Products
// @tag.description Product catalog management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/AJLandry1000000000/flower-shop/docs" // swagger docs

	"github.com/AJLandry1000000000/flower-shop/config"
	"github.com/AJLandry1000000000/flower-shop/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := application.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

//go:build integration

// Package testutil provides testcontainers setup for integration tests.
package testutil

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Container is a started testcontainer together with its connection string.
type Container struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer.
// Prefer the shared container from test_container.go inside TestMain.
func SetupMongoDB(ctx context.Context) (*Container, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, errors.Wrap(err, "start mongodb container")
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, errors.Wrap(err, "mongodb connection string")
	}

	return &Container{Container: mongoContainer, URI: uri}, nil
}

// SetupPostgres creates and starts a PostgreSQL testcontainer.
func SetupPostgres(ctx context.Context) (*Container, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("flowershop"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "start postgres container")
	}

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, errors.Wrap(err, "postgres connection string")
	}

	return &Container{Container: pgContainer, URI: dsn}, nil
}

// Cleanup terminates the container.
func (c *Container) Cleanup(ctx context.Context) error {
	if c == nil || c.Container == nil {
		return nil
	}
	if err := c.Container.Terminate(ctx); err != nil {
		return errors.Wrap(err, "terminate container")
	}
	return nil
}

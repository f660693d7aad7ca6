//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMongoProductRepository_Integration(t *testing.T) {
	t.Parallel()
	db := setupTestDBFromSharedContainer(t)

	testProductRepository(t, NewMongoProductRepository(db))
}

func TestPostgresProductRepository_Integration(t *testing.T) {
	t.Parallel()
	pool := setupTestPoolFromSharedContainer(t)

	repo := NewPostgresProductRepository(pool)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, repo.EnsureSchema(context.Background()), "schema creation is idempotent")
	require.NoError(t, repo.HealthCheck(context.Background()))

	testProductRepository(t, repo)
}

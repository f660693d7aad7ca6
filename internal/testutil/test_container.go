//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	sharedMu       sync.RWMutex
	sharedMongo    *Container
	sharedPostgres *Container
)

// SetupTestMainWithMongoDB starts one MongoDB container for the whole package,
// runs the tests and tears the container down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	return setupTestMain(ctx, m, false)
}

// SetupTestMainWithStores is SetupTestMainWithMongoDB plus a shared PostgreSQL container.
func SetupTestMainWithStores(ctx context.Context, m *testing.M) int {
	return setupTestMain(ctx, m, true)
}

func setupTestMain(ctx context.Context, m *testing.M, withPostgres bool) int {
	mongo, err := SetupMongoDB(ctx)
	if err != nil {
		panic(err)
	}

	var pg *Container
	if withPostgres {
		if pg, err = SetupPostgres(ctx); err != nil {
			_ = mongo.Cleanup(ctx)
			panic(err)
		}
	}

	sharedMu.Lock()
	sharedMongo, sharedPostgres = mongo, pg
	sharedMu.Unlock()

	code := m.Run()

	for _, c := range []*Container{mongo, pg} {
		if err := c.Cleanup(ctx); err != nil {
			// docker reaps the container eventually
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to cleanup shared container: %v\n", err)
		}
	}

	return code
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedMongo == nil {
		panic("shared MongoDB container not initialized - use SetupTestMainWithMongoDB in TestMain")
	}
	return sharedMongo.URI
}

// GetSharedPostgresDSN returns the DSN of the shared PostgreSQL container.
func GetSharedPostgresDSN() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedPostgres == nil {
		panic("shared PostgreSQL container not initialized - use SetupTestMainWithStores in TestMain")
	}
	return sharedPostgres.URI
}

// SanitizeDBName turns a test name into a database or schema name that is
// unique per run: lower case, letters, digits and underscores only.
func SanitizeDBName(testName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(testName) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	sanitized := b.String()
	if len(sanitized) > 40 {
		sanitized = sanitized[:40]
	}

	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}

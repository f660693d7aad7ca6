// Package config provides configuration management for the flower shop.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Product store backends.
const (
	StoreMemory   = "memory"
	StoreMongoDB  = "mongodb"
	StorePostgres = "postgres"
)

// Config holds the complete application configuration.
type Config struct {
	Server         ServerConfig
	Cache          CacheConfig
	Order          OrderConfig
	Catalog        CatalogConfig
	Database       DatabaseConfig
	Postgres       PostgresConfig
	CircuitBreaker CircuitBreakerConfig
	History        HistoryConfig
	Log            LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// CacheConfig holds breakdown cache configuration.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// OrderConfig holds order validation limits.
type OrderConfig struct {
	MaxQuantity int
}

// CatalogConfig says where the seed catalog comes from. S3 is tried first,
// then the file, then the built-in products.
type CatalogConfig struct {
	ProductStore string
	File         string
	S3Enabled    bool
	S3Bucket     string
	S3Region     string
	S3Key        string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	HistoryTTL   time.Duration
	Enabled      bool
}

// PostgresConfig holds PostgreSQL configuration.
type PostgresConfig struct {
	DSN string
}

// CircuitBreakerConfig is shared by every store breaker.
type CircuitBreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	Timeout          time.Duration
}

// HistoryConfig holds the asynchronous order history writer configuration.
type HistoryConfig struct {
	BufferSize   int
	Workers      int
	WriteTimeout time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:       parseList(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Order: OrderConfig{
			MaxQuantity: getEnvInt("ORDER_MAX_QUANTITY", 1_000_000),
		},
		Catalog: CatalogConfig{
			ProductStore: strings.ToLower(getEnv("PRODUCT_STORE", StoreMemory)),
			File:         getEnv("CATALOG_FILE", ""),
			S3Enabled:    getEnvBool("CATALOG_S3_ENABLED", false),
			S3Bucket:     getEnv("CATALOG_S3_BUCKET", ""),
			S3Region:     getEnv("CATALOG_S3_REGION", "us-east-1"),
			S3Key:        getEnv("CATALOG_S3_KEY", "catalog.yaml"),
		},
		Database: DatabaseConfig{
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "flower_shop"),
			HistoryTTL:   getEnvDuration("MONGODB_HISTORY_TTL", 30*24*time.Hour),
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
		},
		Postgres: PostgresConfig{
			DSN: getEnv("POSTGRES_DSN", ""),
		},
		CircuitBreaker: CircuitBreakerConfig{
			FailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			SuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			Timeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		History: HistoryConfig{
			BufferSize:   getEnvInt("HISTORY_BUFFER_SIZE", 1000),
			Workers:      getEnvInt("HISTORY_WORKERS", 4),
			WriteTimeout: getEnvDuration("HISTORY_WRITE_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.Catalog.ProductStore {
	case StoreMemory:
	case StoreMongoDB:
		if !c.Database.Enabled {
			return errors.New("PRODUCT_STORE=mongodb requires MONGODB_ENABLED=true")
		}
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("PRODUCT_STORE=postgres requires POSTGRES_DSN")
		}
	default:
		return errors.Errorf("unknown PRODUCT_STORE %q (want memory, mongodb or postgres)", c.Catalog.ProductStore)
	}
	if c.Catalog.S3Enabled && c.Catalog.S3Bucket == "" {
		return errors.New("CATALOG_S3_ENABLED requires CATALOG_S3_BUCKET")
	}
	if c.Order.MaxQuantity <= 0 {
		return errors.Errorf("ORDER_MAX_QUANTITY must be positive, got %d", c.Order.MaxQuantity)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma-separated value, dropping blanks. Empty input
// yields nil so that callers can apply their own defaults.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

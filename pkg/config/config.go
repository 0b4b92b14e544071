package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr           string `conf:"default::8080,env:HTTP_ADDR"`
	RateLimitPerMinute int    `conf:"default:100,env:RATE_LIMIT_PER_MINUTE"`

	// Redis; empty selects the in-process receipt cache
	RedisURL        string        `conf:"env:REDIS_URL"`
	ReceiptCacheTTL time.Duration `conf:"default:24h,env:RECEIPT_CACHE_TTL"`

	// Receipts
	ReceiptWidth    int  `conf:"default:50,env:RECEIPT_WIDTH"`
	StrictOverrides bool `conf:"default:true,env:STRICT_OVERRIDES"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,enum:json|text,env:LOG_FORMAT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS: comma-separated list of allowed origins, * allows all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string  `conf:"default:electrocart,env:SERVICE_NAME"`
	ServiceVersion string  `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string  `conf:"env:OTEL_ENDPOINT"`
	TraceSampling  float64 `conf:"default:1,env:OTEL_TRACE_SAMPLING"`
	SentryDSN      string  `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults.
// Command-line flags conf does not know are ignored and flag parsing stops
// at the first positional argument, so a cobra CLI can call Load after
// parsing its own flags.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}

	if cfg.TraceSampling < 0 || cfg.TraceSampling > 1 {
		errs = append(errs, fmt.Sprintf("OTEL_TRACE_SAMPLING must be within [0, 1] (got %g)", cfg.TraceSampling))
	}

	if cfg.ReceiptWidth < 20 {
		errs = append(errs, fmt.Sprintf("RECEIPT_WIDTH must be at least 20 (got %d)", cfg.ReceiptWidth))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}

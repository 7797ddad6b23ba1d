// Package env resolves the small set of environment-derived
// configuration the service needs at startup.
package env

import (
	"os"
	"strconv"
)

// Config holds resolved process configuration.
type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string
	// Env selects dev-only behavior (permissive CORS, verbose logging).
	Env string
	// MaxConcurrentRequests bounds in-flight HTTP requests before the
	// server starts answering 429.
	MaxConcurrentRequests int
	// RequestBodyLimitBytes caps a single JSON request body.
	RequestBodyLimitBytes int64
}

const (
	defaultPort                  = "7002"
	defaultMaxConcurrentRequests = 256
	defaultRequestBodyLimitBytes = 1 << 20
)

// Load resolves Config from the process environment, falling back to
// a default port of 7002 when PORT is unset.
func Load() Config {
	return Config{
		Addr:                  ":" + getEnv("PORT", defaultPort),
		Env:                   getEnv("ENV", "production"),
		MaxConcurrentRequests: getEnvInt("MAX_CONCURRENT_REQUESTS", defaultMaxConcurrentRequests),
		RequestBodyLimitBytes: getEnvInt64("REQUEST_BODY_LIMIT_BYTES", defaultRequestBodyLimitBytes),
	}
}

// IsDev reports whether the dev-only behaviors (CORS, verbose logging)
// should be enabled.
func (c Config) IsDev() bool { return c.Env == "dev" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

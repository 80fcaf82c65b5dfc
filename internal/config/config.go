package config

import (
	"os"
	"strconv"
	"time"
)

// Transport selects how the MCP server is exposed.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port      int
	LogLevel  string
	Transport string // "http" (streamable HTTP) or "stdio"

	// Oracle Fusion REST client
	OracleTimeout      time.Duration // per-request timeout for resource fetches
	OracleProbeTimeout time.Duration // shorter timeout for the connection probe
	PageSize           int           // records requested per page
	MaxRecords         int           // pagination safety cap per tool call
	MaxPages           int           // hard page cap even if the upstream keeps reporting more

	// Resilience
	MaxConcurrency int           // bulkhead on concurrent upstream requests
	BreakerTTL     time.Duration // idle eviction for per-host circuit breakers

	// Observability
	OTLPEndpoint string

	// HTTPAuthSecret, when set, requires a signed bearer token on /mcp.
	// Empty disables the gate (stdio mode never uses it).
	HTTPAuthSecret string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	cfg := &Config{
		Port:      getEnvInt("PORT", 8000),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Transport: getEnv("MCP_TRANSPORT", TransportHTTP),

		OracleTimeout:      getEnvDuration("ORACLE_TIMEOUT", 60*time.Second),
		OracleProbeTimeout: getEnvDuration("ORACLE_PROBE_TIMEOUT", 30*time.Second),
		PageSize:           getEnvInt("ORACLE_PAGE_SIZE", 100),
		MaxRecords:         getEnvInt("ORACLE_MAX_RECORDS", 500),

		MaxConcurrency: getEnvInt("ORACLE_MAX_CONCURRENT", 50),
		BreakerTTL:     getEnvDuration("ORACLE_BREAKER_TTL", 30*time.Minute),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		HTTPAuthSecret: getEnv("MCP_HTTP_AUTH_SECRET", ""),
	}

	if cfg.PageSize < 1 {
		cfg.PageSize = 1
	}
	if cfg.MaxRecords < 1 {
		cfg.MaxRecords = 1
	}
	// One extra page absorbs a final short page; beyond that the upstream is lying.
	cfg.MaxPages = getEnvInt("ORACLE_MAX_PAGES", cfg.MaxRecords/cfg.PageSize+1)

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

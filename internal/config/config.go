package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Pricing   PricingConfig
	Scheduler SchedulerConfig
	Security  SecurityConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// PricingConfig holds configuration for the live-price resolver.
type PricingConfig struct {
	// BaseURL is the quote service endpoint prefix.
	BaseURL string
	// RequestTimeout bounds each outbound quote call.
	RequestTimeout time.Duration
	// MaxConcurrentLookups caps the per-asset fan-out when a batch
	// lookup fails. Lookups beyond the cap queue.
	MaxConcurrentLookups int
	// CacheTTL is how long cached quotes stay fresh.
	CacheTTL time.Duration
}

// SchedulerConfig holds configuration for background jobs.
type SchedulerConfig struct {
	// QuoteRefreshSpec is the cron spec for the quote-cache warmer.
	// Empty disables the job.
	QuoteRefreshSpec string
}

// SecurityConfig holds token-signing configuration.
type SecurityConfig struct {
	// FernetKey is the base64-encoded key used to sign registration tokens.
	// Empty disables token issuance.
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/portfolio_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Pricing: PricingConfig{
			BaseURL:              getEnv("QUOTE_BASE_URL", "https://query1.finance.yahoo.com"),
			RequestTimeout:       getEnvDuration("QUOTE_TIMEOUT", 10*time.Second),
			MaxConcurrentLookups: getEnvInt("QUOTE_MAX_CONCURRENT", 50),
			CacheTTL:             getEnvDuration("QUOTE_CACHE_TTL", time.Minute),
		},
		Scheduler: SchedulerConfig{
			QuoteRefreshSpec: getEnv("QUOTE_REFRESH_SPEC", "@every 5m"),
		},
		Security: SecurityConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value.
// Invalid values fall back to the default rather than failing startup.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// getEnvDuration gets a duration environment variable or returns a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

package config

import (
	"os"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	// DatabasePath is the SQLite file path.
	DatabasePath string

	// ServerAddr is the HTTP listen address.
	ServerAddr string

	// AllowOrigins are the CORS origins permitted to call the API.
	AllowOrigins []string

	// LogLevel selects the logger verbosity (debug, info, warn, error).
	LogLevel string

	// ExpiryHorizonDays bounds the expiring-soon window when the caller
	// does not specify one.
	ExpiryHorizonDays int
}

// NewFromEnv creates a new Config object from environment variables,
// falling back to sensible defaults so the app runs with no env at all.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		DatabasePath:      getEnv("DATABASE_PATH", "fresh-pantry.db"),
		ServerAddr:        getEnv("SERVER_ADDR", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ExpiryHorizonDays: 7,
	}

	origins := getEnv("CORS_ORIGINS", "*")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

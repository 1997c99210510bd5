// internal/config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Store       StoreConfig
	Log         LogConfig
}

type StoreConfig struct {
	// Path is the SQLite database file. Tests use an in-memory DSN instead.
	Path          string
	BusyTimeoutMS int
	LogLevel      string
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Store: StoreConfig{
			Path:          getEnv("STORE_PATH", "ecommerce.db"),
			BusyTimeoutMS: getEnvAsInt("STORE_BUSY_TIMEOUT_MS", 5000),
			LogLevel:      getEnv("STORE_LOG_LEVEL", "silent"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return config, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

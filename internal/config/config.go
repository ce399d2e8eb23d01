package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort      string
	GinMode         string
	ShutdownTimeout time.Duration

	Database   DatabaseConfig
	Logging    LoggingConfig
	App        AppConfig
	RateLimit  RateLimitConfig
	Pagination PaginationConfig
}

// DatabaseConfig selects the gorm dialect and connection string.
type DatabaseConfig struct {
	Driver string // mysql or sqlite
	DSN    string
}

// LoggingConfig controls the zerolog output.
type LoggingConfig struct {
	Level    string
	Format   string // json or console
	Output   string // stdout, stderr or file
	FilePath string
}

// AppConfig is stamped onto every log line.
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// RateLimitConfig configures the per-caller token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// PaginationConfig controls how from/size translate into an offset.
type PaginationConfig struct {
	// ExactOffset uses from as the row offset instead of snapping to a page boundary.
	ExactOffset bool
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GinMode:         getEnv("GIN_MODE", "debug"),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s")),
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "mysql"),
			DSN:    getEnvRequired("DB_DSN"),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Format:   getEnv("LOG_FORMAT", "json"),
			Output:   getEnv("LOG_OUTPUT", "stdout"),
			FilePath: getEnv("LOG_FILE_PATH", ""),
		},
		App: AppConfig{
			Name:        getEnv("APP_NAME", "shareit"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "dev"),
		},
		RateLimit: RateLimitConfig{
			RPS:   parseFloat(getEnv("RATE_LIMIT_RPS", "0")),
			Burst: parseInt(getEnv("RATE_LIMIT_BURST", "5")),
		},
		Pagination: PaginationConfig{
			ExactOffset: parseBool(getEnv("PAGINATION_EXACT_OFFSET", "false")),
		},
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("required environment variable is not set")
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatal().Str("value", s).Msg("invalid duration format")
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatal().Str("value", s).Msg("invalid integer")
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatal().Str("value", s).Msg("invalid number")
	}
	return f
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Fatal().Str("value", s).Msg("invalid boolean")
	}
	return b
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding environment variable is not set
const (
	DefaultListenAddr     = ":8080"
	DefaultDatabasePath   = "jsonplaceholder.db"
	DefaultAccessTokenTTL = 24 * time.Hour
	DefaultBcryptCost     = 12
	DefaultAuthRateLimit  = 10
	DefaultAuthRateWindow = time.Minute
)

// Config holds server configuration. It is loaded once at startup and
// never mutated afterwards.
type Config struct {
	ListenAddr     string
	DatabasePath   string
	JWTSecret      string
	LogLevel       slog.Level
	AccessTokenTTL time.Duration
	BcryptCost     int
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present. JWT_SECRET is mandatory:
// the signing key must be deployment configuration, never a baked-in default.
func Load() (*Config, error) {
	// Missing .env is fine, real environment still applies
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", DefaultListenAddr),
		DatabasePath:   getEnv("DATABASE_PATH", DefaultDatabasePath),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: DefaultAccessTokenTTL,
		BcryptCost:     DefaultBcryptCost,
		AuthRateLimit:  DefaultAuthRateLimit,
		AuthRateWindow: DefaultAuthRateWindow,
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if v := os.Getenv("ACCESS_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL: %w", err)
		}
		cfg.AccessTokenTTL = ttl
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}

	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
		}
		cfg.AuthRateLimit = limit
	}

	if v := os.Getenv("AUTH_RATE_WINDOW"); v != "" {
		window, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTH_RATE_WINDOW: %w", err)
		}
		cfg.AuthRateWindow = window
	}

	cfg.LogLevel = parseLogLevel(os.Getenv("LOG_LEVEL"))

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

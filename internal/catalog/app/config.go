package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret is the development fallback signing secret. Running
// with it outside dev is refused by Validate.
const DefaultJWTSecret = "shhhshhhshhhshhhshhhshhhshhhshhhshhhshhh"

type Config struct {
	Issuer    string        // Optional: issuer claim for tokens (default: pagebound-catalog)
	JWTSecret string        // Optional in dev, required in prod: HS256 signing secret
	TokenTTL  time.Duration // Optional: session token lifetime (default: 24h, accepts day suffix e.g. "1d")

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./catalog.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("JWT_ISSUER", "pagebound-catalog"),
		JWTSecret:           getEnvOrDefault("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:            getEnvDurationOrDefault("JWT_EXPIRES_IN", 24*time.Hour),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "catalog.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations that must never reach production. The
// built-in signing secret is tolerated in dev (New logs a warning) but
// refused everywhere else.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.JWTSecret == DefaultJWTSecret && c.Env != "dev" {
		return fmt.Errorf("default JWT_SECRET is not allowed when ENV=%s, set a real secret", c.Env)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	return nil
}

// UsesDefaultSecret reports whether the config still carries the
// development fallback secret.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := parseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}

// parseDuration accepts everything time.ParseDuration does plus a day
// suffix, so JWT_EXPIRES_IN can be written as "1d" or "7d".
func parseDuration(value string) (time.Duration, error) {
	if strings.HasSuffix(value, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(value, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q: %w", value, err)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(value)
}

package config

import "os"

// Config holds the application configuration
// Note: This is a stateless configuration - the chord engine keeps no
// database; persistence, auth and billing live in the surrounding platform.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// CORS
	AllowedOrigin string // Origin allowed to call the API ("*" for development)
}

func Load() *Config {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", "8080"),
		SentryDSN:     getEnv("SENTRY_DSN", ""),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// IsProduction returns true when running with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

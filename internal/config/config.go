package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// Database
	DatabaseURL string

	// Auth
	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Calendar
	TimeZone      string // IANA name or "Local"
	GridCacheSize int

	// Picker sessions
	PickerPlaceholder string
	PickerIdleTTL     time.Duration

	// Idle session sweep
	SweepEnabled  bool
	SweepSchedule string        // Cron expression (e.g., "*/5 * * * *")
	SweepTimeout  time.Duration // Timeout for one sweep run
}

func Load() *Config {
	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/opsdesk?sslmode=disable"),

		// Auth
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		// Calendar
		TimeZone:      getEnv("TIMEZONE", "Local"),
		GridCacheSize: getIntEnv("GRID_CACHE_SIZE", 256),

		// Picker sessions
		PickerPlaceholder: getEnv("PICKER_PLACEHOLDER", "Select date range"),
		PickerIdleTTL:     getDurationEnv("PICKER_IDLE_TTL", 30*time.Minute),

		// Idle session sweep
		SweepEnabled:  getBoolEnv("SWEEP_ENABLED", true),
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "*/5 * * * *"), // Default: every five minutes
		SweepTimeout:  getDurationEnv("SWEEP_TIMEOUT", 30*time.Second),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location resolves TimeZone. Calendar dates are computed in this location.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

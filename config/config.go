package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all environment-backed settings. It is loaded once in main
// and passed down explicitly; nothing reads the environment after startup.
type Config struct {
	Port   string
	DBPath string

	// External analytics feed
	FeedAPIURL string
	FeedAPIKey string

	// Operator authentication
	JWTSecret     string
	JWTExpiry     time.Duration
	AdminUsername string
	AdminPassword string

	// Resolution endpoints
	ResolveAPIKey     string // optional shared secret; empty disables the gate
	RedirectTargetURL string // base URL the redirect endpoint points traffic at
}

// Load builds a Config from environment variables, applying the same
// defaults the original deployment used
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3001"),
		DBPath:            getEnv("DB_PATH", "clickmap.db"),
		FeedAPIURL:        os.Getenv("FEED_API_URL"),
		FeedAPIKey:        os.Getenv("FEED_API_KEY"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		ResolveAPIKey:     os.Getenv("RESOLVE_API_KEY"),
		RedirectTargetURL: os.Getenv("REDIRECT_TARGET_URL"),
	}

	expiryHours, err := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %w", err)
	}
	cfg.JWTExpiry = time.Duration(expiryHours) * time.Hour

	if cfg.FeedAPIURL == "" || cfg.FeedAPIKey == "" {
		return nil, fmt.Errorf("FEED_API_URL and FEED_API_KEY must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Package config loads and validates environment variables at startup.
// Fail-fast: a malformed value aborts the process before anything connects.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration.
type Config struct {
	Port string

	// Primary aggregator credential. Empty or the "demo" placeholder keeps
	// the service in scraper mode.
	JSearchAPIKey string

	// Optional Adzuna credentials; the adapter joins the scraper set only
	// when both are present.
	AdzunaAppID   string
	AdzunaAppKey  string
	AdzunaCountry string // e.g. "us", "gb", "fr"

	// Optional backends. Empty means in-memory storage / no event publishing.
	DatabaseURL string
	RedisURL    string

	RefreshIntervalHours int // how often the background feed refresh fires
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	interval := 6
	if s := os.Getenv("REFRESH_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REFRESH_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	country := os.Getenv("ADZUNA_COUNTRY")
	if country == "" {
		country = "us"
	}

	return &Config{
		Port:                 port,
		JSearchAPIKey:        os.Getenv("JSEARCH_API_KEY"),
		AdzunaAppID:          os.Getenv("ADZUNA_APP_ID"),
		AdzunaAppKey:         os.Getenv("ADZUNA_APP_KEY"),
		AdzunaCountry:        country,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisURL:             os.Getenv("REDIS_URL"),
		RefreshIntervalHours: interval,
	}, nil
}

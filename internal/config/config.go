// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration, loaded from the environment.
// The CLI loads a .env file before this runs, so both deployment styles end
// up here.
type Config struct {
	Port        int
	DatabaseURL string

	// YouTubeAPIKey selects the Data API playlist source; when empty the
	// scrape fallback is used instead.
	YouTubeAPIKey string
	// BrowserFallback enables headless rendering in the scrape source.
	BrowserFallback bool

	// GeminiAPIKey enables the study assistant; empty disables it.
	GeminiAPIKey string
}

// Load reads the application configuration from environment variables.
// DATABASE_URL is required; everything else has a default or is optional.
func Load() (*Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port := 5000
	if portStr := os.Getenv("PORT"); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		port = p
	}

	cfg := &Config{
		Port:            port,
		DatabaseURL:     databaseURL,
		YouTubeAPIKey:   os.Getenv("YOUTUBE_API_KEY"),
		BrowserFallback: os.Getenv("PLAYLIST_BROWSER_FALLBACK") == "true",
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

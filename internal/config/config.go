package config

import (
	"fmt"
	"os"
	"strings"
)

// A Gemini credential must be longer than this to enable the AI tier.
const minGeminiKeyLength = 10

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL  string
	Port         string
	FrontendURL  string
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from environment variables and applies sane
// defaults. A missing database URL is fatal; a missing Gemini credential only
// disables the AI tier.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Port:         getEnv("PORT", "8080"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

// AIEnabled reports whether a usable Gemini credential is configured.
func (c *Config) AIEnabled() bool {
	return len(strings.TrimSpace(c.GeminiAPIKey)) > minGeminiKeyLength
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

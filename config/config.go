// ABOUTME: Configuration loader for the capacity advisor service
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, default for general cache
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Auth
	APIToken string // optional bearer token; empty disables auth

	// Rate Limiting
	RateLimitEnabled  bool // Enable rate limiting (default: true)
	RateLimitDefault  int  // Requests per minute for most endpoints (default: 100)
	RateLimitInsights int  // Requests per minute for insight endpoints (default: 10)

	// Insights (optional)
	AnthropicAPIKey string
	InsightsModel   string
	InsightsTTL     int // seconds, cached summary lifetime (default 600)

	// Catalog
	CatalogOverrides string // semicolon-separated path=value pairs applied to the embedded catalog
}

// InsightsConfigured returns true if insight generation credentials are set
func (c *Config) InsightsConfigured() bool {
	return c.AnthropicAPIKey != ""
}

func Load() (*Config, error) {
	// Local development convenience; never overrides real environment variables
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		APIToken: os.Getenv("API_TOKEN"),

		RateLimitEnabled:  getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitDefault:  getEnvInt("RATE_LIMIT_DEFAULT", 100),
		RateLimitInsights: getEnvInt("RATE_LIMIT_INSIGHTS", 10),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		InsightsModel:   getEnv("INSIGHTS_MODEL", "claude-sonnet-4-5"),
		InsightsTTL:     getEnvInt("INSIGHTS_CACHE_TTL", 600),

		CatalogOverrides: os.Getenv("CATALOG_OVERRIDES"),
	}

	// Validate cache lifetimes
	if cfg.CacheTTL < 1 {
		return nil, fmt.Errorf("CACHE_TTL must be positive, got %d", cfg.CacheTTL)
	}
	if cfg.InsightsTTL < 1 {
		return nil, fmt.Errorf("INSIGHTS_CACHE_TTL must be positive, got %d", cfg.InsightsTTL)
	}

	// Validate rate limit values
	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_DEFAULT", cfg.RateLimitDefault},
		{"RATE_LIMIT_INSIGHTS", cfg.RateLimitInsights},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	if cfg.InsightsConfigured() && strings.TrimSpace(cfg.InsightsModel) == "" {
		return nil, fmt.Errorf("INSIGHTS_MODEL must not be blank when ANTHROPIC_API_KEY is set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

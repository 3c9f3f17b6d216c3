package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// SeedStandardChart controls whether the standard chart of accounts is
	// inserted on startup when the chart is empty.
	SeedStandardChart bool

	// Assistant provider settings. An empty base URL disables the assistant
	// endpoints' providers entirely; the API then always reports nothing
	// available.
	AssistantBaseURL string
	AssistantTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SEED_STANDARD_CHART", true)
	viper.SetDefault("ASSISTANT_BASE_URL", "")
	viper.SetDefault("ASSISTANT_TIMEOUT", "15s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.SeedStandardChart = viper.GetBool("SEED_STANDARD_CHART")
	cfg.AssistantBaseURL = viper.GetString("ASSISTANT_BASE_URL")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	assistantTimeoutStr := viper.GetString("ASSISTANT_TIMEOUT")
	assistantTimeout, err := time.ParseDuration(assistantTimeoutStr)
	if err != nil {
		assistantTimeout = 15 * time.Second
		if assistantTimeoutStr != "" {
			log.Printf("Warning: Invalid value for ASSISTANT_TIMEOUT ('%s'). Defaulting to %s.\n", assistantTimeoutStr, assistantTimeout.String())
		}
	}
	cfg.AssistantTimeout = assistantTimeout

	if cfg.AssistantBaseURL == "" {
		log.Println("Warning: ASSISTANT_BASE_URL not set. Assistant suggestions and advice will not function.")
	}

	return cfg, nil
}

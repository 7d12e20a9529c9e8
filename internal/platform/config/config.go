package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Rate source modes.
const (
	RateSourceHTTP = "http"
	RateSourceDB   = "db"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// RedisURL selects the Redis override store; empty keeps overrides in memory.
	RedisURL string

	RateSource     string // "http" or "db"
	RateAPIURL     string
	RateAPITimeout time.Duration
	RateLimit      string // ulule formatted, e.g. "60-M"

	CORSAllowedOrigins []string

	// RegulatoryTablePath points at a JSON duty table; empty uses the embedded one.
	RegulatoryTablePath string

	PosthogAPIKey   string
	PosthogEndpoint string

	OverdueThresholdDays int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_SOURCE", RateSourceHTTP)
	v.SetDefault("RATE_API_URL", "http://localhost:8081/api/exchange-rate")
	v.SetDefault("RATE_API_TIMEOUT", "5s")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REGULATORY_TABLE_PATH", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("OVERDUE_THRESHOLD_DAYS", 30)

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		RedisURL:            v.GetString("REDIS_URL"),
		RateSource:          strings.ToLower(v.GetString("RATE_SOURCE")),
		RateAPIURL:          v.GetString("RATE_API_URL"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		RegulatoryTablePath: v.GetString("REGULATORY_TABLE_PATH"),
		PosthogAPIKey:       v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:     v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.RateSource != RateSourceHTTP && cfg.RateSource != RateSourceDB {
		log.Printf("Warning: Invalid value for RATE_SOURCE ('%s'). Defaulting to %s.\n", cfg.RateSource, RateSourceHTTP)
		cfg.RateSource = RateSourceHTTP
	}

	timeoutStr := v.GetString("RATE_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for RATE_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RateAPITimeout = timeout

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.OverdueThresholdDays = v.GetInt("OVERDUE_THRESHOLD_DAYS")
	if cfg.OverdueThresholdDays <= 0 {
		log.Printf("Warning: Invalid value for OVERDUE_THRESHOLD_DAYS (%d). Defaulting to 30.\n", cfg.OverdueThresholdDays)
		cfg.OverdueThresholdDays = 30
	}

	return cfg, nil
}

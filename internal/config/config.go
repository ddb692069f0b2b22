package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration loaded from the environment.
type Config struct {
	Port           string
	Env            string
	JWTSecret      string
	AllowedOrigins []string

	Admin    AdminConfig
	Upstream UpstreamConfig
	Relay    RelayConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Settings SettingsConfig
}

// AdminConfig holds the single admin account credentials. The password is
// stored as a bcrypt hash, never in plain text.
type AdminConfig struct {
	Email        string
	PasswordHash string
}

// UpstreamConfig points at the third-party store API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RelayConfig points at the public CORS relay used when direct upstream
// requests fail.
type RelayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig holds connection settings for the cache and checkout store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CheckoutConfig tunes the checkout flow.
type CheckoutConfig struct {
	TaxRate         float64
	SessionTTL      time.Duration
	ConfirmationTTL time.Duration
}

// SettingsConfig tunes the site settings cache.
type SettingsConfig struct {
	CacheTTL        time.Duration
	RefreshInterval time.Duration
}

// Load reads configuration from the environment, with .env as a convenience
// for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "http://localhost:5173,https://tapnex.store"),
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "https://anfopublicationhouse.com/api/endpoints"),
			Timeout: getDurationEnv("UPSTREAM_TIMEOUT", 30*time.Second),
		},
		Relay: RelayConfig{
			BaseURL: getEnv("RELAY_BASE_URL", "https://api.allorigins.win"),
			Timeout: getDurationEnv("RELAY_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Checkout: CheckoutConfig{
			TaxRate:         getFloatEnv("CHECKOUT_TAX_RATE", 0.08),
			SessionTTL:      getDurationEnv("CHECKOUT_SESSION_TTL", 30*time.Minute),
			ConfirmationTTL: getDurationEnv("CHECKOUT_CONFIRMATION_TTL", 30*time.Minute),
		},
		Settings: SettingsConfig{
			CacheTTL:        getDurationEnv("SETTINGS_CACHE_TTL", 30*time.Minute),
			RefreshInterval: getDurationEnv("SETTINGS_REFRESH_INTERVAL", 15*time.Minute),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// RedisAddr returns host:port for the redis client.
func (c *Config) RedisAddr() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Msg("Invalid integer in environment, using default")
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Msg("Invalid float in environment, using default")
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Msg("Invalid duration in environment, using default")
	}
	return defaultValue
}

package config

import (
	"os"
	"time"
)

// BackendConfig holds configuration for the remote barbershop directory API
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Config holds the web application configuration
type Config struct {
	Port          string
	Environment   string
	LogLevel      string
	SessionSecret string

	Backend  BackendConfig
	Geocoder BackendConfig
	Postal   BackendConfig

	RedisAddr     string
	RedisPassword string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("HTTP_PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SessionSecret: getEnv("SESSION_SECRET", "barberhub-dev-secret"),
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_URL", "http://localhost:3333"),
			Timeout: 10 * time.Second,
		},
		Geocoder: BackendConfig{
			BaseURL: getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			Timeout: 8 * time.Second,
		},
		Postal: BackendConfig{
			BaseURL: getEnv("POSTAL_URL", "https://viacep.com.br"),
			Timeout: 5 * time.Second,
		},
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PayrollAPI PayrollAPIConfig
	JWT        JWTConfig
	App        AppConfig
}

// PayrollAPIConfig points the gateway at the external payroll backend.
type PayrollAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// JWTConfig holds the HS256 secret shared with the payroll API, used to
// verify the tokens it issues.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port       int
	Env        string
	LogLevel   string
	CORSOrigin string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	apiTimeout, err := time.ParseDuration(getEnv("PAYROLL_API_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_API_TIMEOUT: %w", err)
	}

	config.PayrollAPI = PayrollAPIConfig{
		BaseURL: getEnv("PAYROLL_API_URL", "http://127.0.0.1:8000"),
		Timeout: apiTimeout,
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.PayrollAPI.BaseURL == "" {
		return fmt.Errorf("PAYROLL_API_URL is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

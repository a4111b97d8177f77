// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Env       string
	Port      string
	JWTSecret string
	Database  DatabaseConfig
	Cloud     CloudConfig
}

// DatabaseConfig holds the local snapshot database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Quiet    bool
}

// CloudConfig points at the hosted inventory backend
type CloudConfig struct {
	Endpoint     string
	APIKey       string
	SessionToken string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "3001"),
		JWTSecret: jwtSecret,
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "pantrygo"),
			Quiet:    getEnv("DB_QUIET", "false") == "true",
		},
		Cloud: CloudConfig{
			Endpoint:     os.Getenv("CLOUD_ENDPOINT"),
			APIKey:       os.Getenv("CLOUD_API_KEY"),
			SessionToken: os.Getenv("CLOUD_SESSION_TOKEN"),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	JWTSecret      string
	TokenExpiry    time.Duration
	AllowedOrigins []string
	LogLevel       string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	tokenExpiry := time.Hour
	if exp := os.Getenv("TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			tokenExpiry = parsed
		}
	}

	return &Config{
		Port:           getEnv("PORT", "8070"),
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDatabase:  getEnv("MONGO_DATABASE", "ReserviaDB"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenExpiry:    tokenExpiry,
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8050"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports configuration the process cannot start without.
func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

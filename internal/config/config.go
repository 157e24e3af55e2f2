package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	Environment   string
	LogLevel      string
	MongoDBURI    string
	MongoDBName   string
	JWTSecret     string
	JWTIssuer     string
	TokenTTL      time.Duration
	UploadDir     string
	PublicBaseURL string
	CORSOrigin    string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnvWithDefault("PORT", "8080"),
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:      getEnvWithDefault("LOG_LEVEL", "info"),
		MongoDBURI:    os.Getenv("MONGODB_URI"),
		MongoDBName:   getEnvWithDefault("MONGODB_DATABASE", "venuebook"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnvWithDefault("JWT_ISSUER", "venuebook-api"),
		TokenTTL:      24 * time.Hour,
		UploadDir:     getEnvWithDefault("UPLOAD_DIR", "uploads"),
		CORSOrigin:    getEnvWithDefault("CORS_ORIGIN", "http://localhost:5173"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
	}

	if hours := os.Getenv("TOKEN_TTL_HOURS"); hours != "" {
		h, err := strconv.Atoi(hours)
		if err != nil || h <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer")
		}
		cfg.TokenTTL = time.Duration(h) * time.Hour
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}

	// Validate required fields
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

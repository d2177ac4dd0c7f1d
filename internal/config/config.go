// Package config loads the application configuration from environment
// variables once at startup. The resulting value is passed explicitly to
// every component instead of being read from ambient process state.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	DatabaseDSN string
	ClientURL   string

	// Signing secrets, one per token purpose. Never shared across purposes.
	ActivationSecret string
	SessionSecret    string
	ResetSecret      string

	// Token lifetimes.
	ActivationTTL time.Duration
	SessionTTL    time.Duration
	ResetTTL      time.Duration

	// SMTP settings for activation and reset mail.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	// Redis for the auth-endpoint rate limiter. Optional.
	RedisAddr     string
	RedisPassword string

	// UploadDir is where multipart images are stored.
	UploadDir string
}

// Load reads the configuration from environment variables and validates
// that the required fields are set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8081"),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		ClientURL:        getEnv("CLIENT_URL", "http://localhost:3000"),
		ActivationSecret: os.Getenv("JWT_ACTIVATION_SECRET"),
		SessionSecret:    os.Getenv("JWT_SESSION_SECRET"),
		ResetSecret:      os.Getenv("JWT_RESET_SECRET"),
		ActivationTTL:    10 * time.Minute,
		SessionTTL:       30 * 24 * time.Hour,
		ResetTTL:         time.Minute,
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		SenderEmail:      getEnv("SENDER_EMAIL", os.Getenv("SMTP_USERNAME")),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		UploadDir:        getEnv("UPLOAD_DIR", "./public/images"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.ActivationSecret == "" {
		return nil, fmt.Errorf("JWT_ACTIVATION_SECRET is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("JWT_SESSION_SECRET is required")
	}
	if cfg.ResetSecret == "" {
		return nil, fmt.Errorf("JWT_RESET_SECRET is required")
	}
	if cfg.ActivationSecret == cfg.SessionSecret || cfg.SessionSecret == cfg.ResetSecret ||
		cfg.ActivationSecret == cfg.ResetSecret {
		return nil, fmt.Errorf("token signing secrets must differ per purpose")
	}
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

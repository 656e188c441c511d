package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port         string
	Env          string
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
}

func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "3000"),
		Env:          getEnv("ENV", "development"),
		DatabasePath: getEnv("DATABASE_PATH", "tasks.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		TokenTTL:     time.Hour,
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

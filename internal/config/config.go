package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	APIToken    string // static bearer token; empty disables authentication
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		APIToken:    getEnv("API_TOKEN", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

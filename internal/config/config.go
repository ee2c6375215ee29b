package config

import (
	"os"
	"strconv"
)

// ServerConfig holds HTTP server settings.
//
// BodyLimitMB caps the raw request body accepted by the server. It must stay
// above the 20 MiB admission ceiling so oversized-but-parseable uploads are
// rejected by the ingest service with a typed response instead of being cut
// off by the framework.
type ServerConfig struct {
	BodyLimitMB int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. The upload admission policy is
// deliberately not configurable here; it is fixed at startup in the model
// package.
type AppConfig struct {
	AppHost string
	Port    string
	Server  ServerConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Server: ServerConfig{
			BodyLimitMB: getEnvInt("HTTP_BODY_LIMIT_MB", 32),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

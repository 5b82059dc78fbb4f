package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of an environment variable, loading .env once per
// call so local runs pick up changes without a restart.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigDefault falls back when the variable is unset or empty.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

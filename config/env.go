package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv pulls a local .env into the environment for developer runs.
// A missing .env is fine; CI and Lambda set real environment variables.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
}

// MustEnv returns the value of a required environment variable.
func MustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("WARNING: %s environment variable is required!", key)
	}
	return value
}

// EnvOr returns the value of an environment variable, or fallback when it
// is unset.
func EnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

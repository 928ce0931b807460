package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// DatabaseURL returns the postgres DSN, empty when the sqlite fallback should be used
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// SQLitePath returns the sqlite database file used when no DATABASE_URL is set
func SQLitePath() string {
	return GetEnv("SQLITE_PATH", "data/reviewhub.db")
}

// JWTSecret returns the token signing secret
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

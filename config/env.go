package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv overlays variables from a .env file when one exists. A missing
// file is not an error; deployments may configure the process environment
// directly.
func LoadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// GetEnv returns the value of key, or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

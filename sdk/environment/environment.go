// Package environment provides utilities for managing environment variables
// and configuration loading with support for namespacing and defaults.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given .env files, or from
// .env in the working directory when none are given. Variables already set
// in the process environment win.
//
// Example:
//
//	if err := LoadEnv(); err != nil {
//	    log.Printf("warning: %v", err)
//	}
func LoadEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// LoadEnvIfPresent behaves like LoadEnv but treats a missing file as success.
func LoadEnvIfPresent(paths ...string) error {
	err := LoadEnv(paths...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// GetEnvOrDefault retrieves an environment variable value, returning a fallback
// value if the variable is not set.
//
// Example:
//
//	port := GetEnvOrDefault("PORT", "8080")
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix constructs a namespaced environment variable key by
// combining a prefix with the key name using an underscore. If no prefix is
// provided, it returns the key unchanged.
//
//	GetEnvKeyPrefix("ARTISAN", "BASE_PATH") // "ARTISAN_BASE_PATH"
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a namespaced environment variable value,
// returning a fallback value if the variable is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}

// Package env reads process configuration from the environment, optionally
// seeded from .env files in the working directory.
package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadFiles reads .env then .env.local. Variables already present in the
// environment (e.g. set by Docker) are never overridden.
func LoadFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func Get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int parses key as an integer, falling back to def when unset.
func Int(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: want an integer", key, v)
	}
	return n, nil
}

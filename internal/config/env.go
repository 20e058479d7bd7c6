// Package config provides shared configuration utilities.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt64 returns the variable parsed as an int64, or fallback if it is
// unset or not a number.
func GetEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvBool returns the variable parsed as a bool ("1", "true", "off", ...),
// or fallback if it is unset or unrecognised.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "yes", "on":
		return true
	case "0", "f", "false", "no", "off":
		return false
	}
	return fallback
}

// DataPath returns where the identity and leaderboard file lives.
// METEOR_DATA overrides the per-user config directory default.
func DataPath() string {
	if path := GetEnv("METEOR_DATA", ""); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".meteordodge.json"
	}
	return filepath.Join(dir, "meteordodge", "data.json")
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// envSearchPaths are tried in order; the first readable file wins.
var envSearchPaths = []string{".env", "../.env", "../../.env"}

// LoadEnv loads environment variables from the first .env file found in the
// current directory or its parents. Variables already set are left alone.
func LoadEnv() error {
	for _, envPath := range envSearchPaths {
		data, err := os.ReadFile(envPath)
		if err != nil {
			continue
		}
		applyEnv(string(data))
		break
	}
	return nil
}

// applyEnv sets KEY=VALUE pairs from the contents of a .env file.
func applyEnv(contents string) {
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets integer environment variable with default
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

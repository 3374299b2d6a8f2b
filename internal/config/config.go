package config

import "os"

// Config holds all application configuration
type Config struct {
	StorePath string
	Port      string
	LogLevel  string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		StorePath: getEnv("STORE_PATH", "./data/lunch.db"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

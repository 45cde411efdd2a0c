package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Host string

	// Persistence
	DBPath   string
	BlobSlot string

	// Insight
	GeminiAPIKey   string
	GeminiModel    string
	InsightTimeout time.Duration
	InsightCount   int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server: bound to loopback, the bundled UI is the only client
		Port: getEnv("PORT", "8080"),
		Host: getEnv("HOST", "127.0.0.1"),

		// Persistence
		DBPath:   getEnv("DB_PATH", "data/tanzine.db"),
		BlobSlot: getEnv("BLOB_SLOT", "tanzine-finance-storage"),

		// Insight
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		InsightCount: getEnvInt("INSIGHT_TX_COUNT", 5),
	}

	// Parse insight request timeout
	timeoutStr := getEnv("INSIGHT_TIMEOUT", "20s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid INSIGHT_TIMEOUT value '%s', falling back to 20s\n", timeoutStr)
		timeout = 20 * time.Second
	}
	config.InsightTimeout = timeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
	}
	return defaultValue
}

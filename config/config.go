package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	LogLevel    string
	Environment string
	ProjectName string

	DatabasePath       string
	DatabaseName       string
	DatabasePassphrase string

	CSVPath string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:        getEnv("PORT", "3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "local"),
		ProjectName: getEnv("PROJECT_NAME", "trustpilot-reviews"),

		DatabasePath:       getEnv("DATABASE_PATH", "."),
		DatabaseName:       getEnv("DATABASE_NAME", "reviews"),
		DatabasePassphrase: os.Getenv("DATABASE_PASSPHRASE"),

		CSVPath: getEnv("CSV_PATH", "./data/dataops_tp_reviews.csv"),
	}

	// The passphrase keys the database file, there is no usable default
	if AppConfig.DatabasePassphrase == "" {
		log.Fatal("DATABASE_PASSPHRASE is required but not set")
	}
}

// DatabaseFile returns the full path of the encrypted database file
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DatabasePath, c.DatabaseName+".db")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

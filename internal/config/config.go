package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Auth     AuthConfig
	Backup   BackupConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds authentication configuration.
// SecretKey must be a base64-encoded 32-byte fernet key. BootstrapUser and
// BootstrapPassword seed the single household login on first start.
type AuthConfig struct {
	SecretKey         string
	SessionTTLMinutes int
	BootstrapUser     string
	BootstrapPassword string
}

// BackupConfig holds database backup configuration.
type BackupConfig struct {
	Dir      string
	Keep     int    // Number of backup files to retain
	Schedule string // Cron expression for the nightly backup job
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/wealthtrack.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Auth: AuthConfig{
			SecretKey:         os.Getenv("AUTH_SECRET_KEY"),
			SessionTTLMinutes: getEnvInt("AUTH_SESSION_TTL_MINUTES", 12*60),
			BootstrapUser:     getEnv("AUTH_BOOTSTRAP_USER", "admin"),
			BootstrapPassword: os.Getenv("AUTH_BOOTSTRAP_PASSWORD"),
		},
		Backup: BackupConfig{
			Dir:      getEnv("BACKUP_DIR", "./data/backups"),
			Keep:     getEnvInt("BACKUP_KEEP", 14),
			Schedule: getEnv("BACKUP_SCHEDULE", "0 3 * * *"),
		},
	}

	if config.Auth.SecretKey == "" {
		return nil, fmt.Errorf("AUTH_SECRET_KEY is required")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value.
// Non-numeric values fall back to the default rather than failing startup.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

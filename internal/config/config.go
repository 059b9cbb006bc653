package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Dispatch DispatchConfig
	Outbox   OutboxConfig
	Retry    RetryConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// AdminConfig holds the organizer token settings. Only the bcrypt hash
// is ever configured; generate it with cmd/admin-token.
type AdminConfig struct {
	TokenHash string
}

// DispatchConfig holds notification dispatch batching settings
type DispatchConfig struct {
	BatchSize    int
	BatchDelay   time.Duration
	BatchTimeout time.Duration
}

// OutboxConfig holds the background drainer settings
type OutboxConfig struct {
	Interval time.Duration
}

// RetryConfig holds database retry settings
type RetryConfig struct {
	Attempts int
	Backoff  time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Database: DatabaseConfig{
			Host:      getEnv("DB_HOST", "localhost"),
			Port:      getEnv("DB_PORT", "8000"),
			Namespace: getEnv("DB_NAMESPACE", "hackops"),
			Database:  getEnv("DB_DATABASE", "main"),
			User:      getEnv("DB_USER", "root"),
			Password:  getEnv("DB_PASSWORD", "root"),
		},
		Admin: AdminConfig{
			TokenHash: getEnv("ADMIN_TOKEN_HASH", ""),
		},
		Dispatch: DispatchConfig{
			BatchSize:    getIntEnv("DISPATCH_BATCH_SIZE", 25),
			BatchDelay:   getDurationEnv("DISPATCH_BATCH_DELAY", 2*time.Second),
			BatchTimeout: getDurationEnv("DISPATCH_BATCH_TIMEOUT", 30*time.Second),
		},
		Outbox: OutboxConfig{
			Interval: getDurationEnv("OUTBOX_INTERVAL", time.Minute),
		},
		Retry: RetryConfig{
			Attempts: getIntEnv("DB_RETRY_ATTEMPTS", 3),
			Backoff:  getDurationEnv("DB_RETRY_BACKOFF", 100*time.Millisecond),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}

	// Admin token - mutations are unprotected without it
	if c.IsProduction() && c.Admin.TokenHash == "" {
		errs = append(errs, errors.New("ADMIN_TOKEN_HASH is required in production"))
	}
	if c.Admin.TokenHash != "" && !strings.HasPrefix(c.Admin.TokenHash, "$2") {
		errs = append(errs, errors.New("ADMIN_TOKEN_HASH must be a bcrypt hash"))
	}

	// Dispatch validation
	if c.Dispatch.BatchSize <= 0 {
		errs = append(errs, errors.New("DISPATCH_BATCH_SIZE must be positive"))
	}
	if c.Dispatch.BatchDelay < 0 {
		errs = append(errs, errors.New("DISPATCH_BATCH_DELAY must not be negative"))
	}
	if c.Dispatch.BatchTimeout <= 0 {
		errs = append(errs, errors.New("DISPATCH_BATCH_TIMEOUT must be positive"))
	}

	// Outbox validation
	if c.Outbox.Interval <= 0 {
		errs = append(errs, errors.New("OUTBOX_INTERVAL must be positive"))
	}

	// Retry validation
	if c.Retry.Attempts <= 0 {
		errs = append(errs, errors.New("DB_RETRY_ATTEMPTS must be positive"))
	}
	if c.Retry.Backoff <= 0 {
		errs = append(errs, errors.New("DB_RETRY_BACKOFF must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

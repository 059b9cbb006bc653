// Package config manages application configuration for the HackOps API.
//
// Configuration is loaded from environment variables with defaults that
// work for local development, then checked once at startup:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - AdminConfig: bcrypt hash of the organizer token
//   - DispatchConfig: notification batch size, delay, and timeout
//   - OutboxConfig: background drainer interval
//   - RetryConfig: database retry attempts and backoff
//
// Validate collects every failure into one joined error so a broken
// deployment reports all misconfiguration at once.
package config

// Package config manages application configuration for the guild manager API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - RateLimitConfig: per-client request throttling
//   - JobsConfig: background integrity auditor settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, production, or test
//	DB_HOST              - SurrealDB host (default: localhost)
//	DB_PORT              - SurrealDB port (default: 8000)
//	DB_NAMESPACE         - Database namespace
//	DB_DATABASE          - Database name
//	RATE_LIMIT_RATE      - Requests allowed per window
//	AUDITOR_INTERVAL     - Roster integrity scan interval
//
// # Default Values
//
// Sensible defaults are provided for development:
//
//	func getEnv(key, defaultValue string) string {
//	    if value := os.Getenv(key); value != "" {
//	        return value
//	    }
//	    return defaultValue
//	}
package config

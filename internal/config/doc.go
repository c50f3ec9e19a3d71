// Package config manages application configuration for the Todo API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, env, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: bearer token verification settings (public key, issuer)
//
// # Environment Variables
//
//	SERVER_PORT          - HTTP server port (default: 3000)
//	SERVER_ENV           - development, production, or test (default: development)
//	DB_HOST              - SurrealDB host (default: localhost)
//	DB_PORT              - SurrealDB port (default: 8000)
//	DB_USER              - Database username (default: root)
//	DB_PASSWORD          - Database password (default: root)
//	DB_NAMESPACE         - Database namespace (default: todos)
//	DB_DATABASE          - Database name (default: todos)
//	JWT_PUBLIC_KEY_PATH  - PEM public key used to verify tokens (default: ./keys/public.pem)
//	JWT_ISSUER           - Expected token issuer (default: todos.forgo.software)
//
// Defaults are aimed at local development; production deployments are
// expected to set every variable explicitly.
package config

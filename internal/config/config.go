// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// Deployment environments accepted in [App.Environment].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Defaults applied by the builder to fields left empty by every source.
const (
	DefaultPort            = 8000
	DefaultRequestTimeout  = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultEnvironment     = EnvDevelopment
	DefaultDotEnvFile      = ".env"
)

// StructuredConfig is the top-level configuration container for the movie
// finder server. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the API secret, the deployment
	// environment and the application version.
	App App

	// Server holds the listen address, timeouts and CORS settings of the
	// HTTP server.
	Server Server

	// Storage selects where the movie catalogue is loaded from.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// APIToken is the shared secret every request must present as
	// "Authorization: Bearer <token>". Required.
	// Env: API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// Environment is the deployment environment: "development",
	// "production" or "test". Production hides error details from clients
	// and switches logging to compact JSON.
	// Env: APP_ENV
	Environment string `env:"APP_ENV"`

	// Version is the version string reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// IsProduction reports whether the service runs in the production environment.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// Host is the interface the server binds to. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "15s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// CORSAllowedOrigins lists the origins allowed by the CORS middleware.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Storage selects the source of the movie catalogue. The catalogue is read
// once at startup; when DB.DSN is set it takes precedence over MoviesFile,
// and when neither is set the embedded sample dataset is served.
type Storage struct {
	// MoviesFile is the path to a JSON array of movie objects.
	// Env: STORAGE_MOVIES_FILE
	MoviesFile string `env:"MOVIES_FILE"`

	// DB holds the optional relational source.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational catalogue source.
type DB struct {
	// DSN is a PostgreSQL URL ("postgres://...") or a SQLite DSN
	// ("file:movies.db", "sqlite://movies.db" or a plain path).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Migrate applies the embedded migrations before the catalogue is read.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. .env file in the working directory (never overrides real variables)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

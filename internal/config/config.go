// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// fitledger application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the shared backend endpoint and credentials. When the
	// address or service key is absent the remote adapter reports not-ready
	// and sync becomes a permanent no-op without raising errors.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds the periodic sync job settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version"`
}

// Storage holds the configuration of the local persistence layer.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_" json:"db"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the path to the SQLite database file (e.g. "fitledger.db").
	// The file is created on first start if it does not exist.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Remote holds the shared backend endpoint, credentials, and probe settings.
type Remote struct {
	// BaseURL is the base URL of the shared backend REST API
	// (e.g. "https://project.example.co"). Empty means not configured.
	// Env: REMOTE_ADDRESS
	BaseURL string `env:"ADDRESS" json:"address"`

	// ServiceKey is the bearer credential (a JWT) granting access to the
	// backend's table API. Empty means not configured.
	// Env: REMOTE_SERVICE_KEY
	ServiceKey string `env:"SERVICE_KEY" json:"service_key"`

	// RequestTimeout bounds every push/pull request (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// ProbeTimeout bounds the connectivity probe request (e.g. "3s").
	// Env: REMOTE_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT" json:"probe_timeout"`

	// ProbeCacheTTL is how long a probe result is reused before the next
	// real network request (e.g. "5s").
	// Env: REMOTE_PROBE_CACHE_TTL
	ProbeCacheTTL time.Duration `env:"PROBE_CACHE_TTL" json:"probe_cache_ttl"`
}

// Sync holds the periodic sync job settings.
type Sync struct {
	// Interval is the period between automatic full sync passes while the
	// app is running (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL" json:"interval"`

	// InitialDelay is how long after startup the first automatic full pass
	// runs (e.g. "10s").
	// Env: SYNC_INITIAL_DELAY
	InitialDelay time.Duration `env:"INITIAL_DELAY" json:"initial_delay"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for any field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

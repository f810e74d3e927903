// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// session-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the local account
	// identity and the device-secret used to seal crypto sessions at rest.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backends: the
	// SQLite account database and the crypto-session directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend endpoint and timeout settings for the
	// outbound HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers such as the
	// activation poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AccountID pins the local account identifier. When empty a fresh
	// identifier is generated on first start.
	// Env: APP_ACCOUNT_ID
	AccountID string `env:"ACCOUNT_ID"`

	// DeviceLabel is the human-readable label sent to the backend during
	// device registration (e.g. "work laptop").
	// Env: APP_DEVICE_LABEL
	DeviceLabel string `env:"DEVICE_LABEL"`

	// DeviceSecret is the secret used to derive the key that seals local
	// crypto-session material at rest. Must be kept confidential.
	// Env: APP_DEVICE_SECRET
	DeviceSecret string `env:"DEVICE_SECRET"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Sessions holds the crypto-session store settings.
	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the local database backend.
type DB struct {
	// DSN is the SQLite file path used to open the database connection
	// (e.g. "~/.session-keeper/accounts.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions holds file-system settings for the crypto-session store.
type Sessions struct {
	// Dir is the directory where sealed per-account session material is
	// kept.
	// Env: STORAGE_SESSIONS_DIR
	Dir string `env:"DIR"`
}

// Adapter holds the outbound transport settings for talking to the backend.
type Adapter struct {
	// BaseURL is the backend base URL (e.g. "https://api.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ActivationInitialDelay is the first retry delay of the activation
	// poller (e.g. "2s").
	// Env: WORKERS_ACTIVATION_INITIAL_DELAY
	ActivationInitialDelay time.Duration `env:"ACTIVATION_INITIAL_DELAY"`

	// ActivationMaxDelay caps the activation poller's exponential backoff
	// (e.g. "15s").
	// Env: WORKERS_ACTIVATION_MAX_DELAY
	ActivationMaxDelay time.Duration `env:"ACTIVATION_MAX_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
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

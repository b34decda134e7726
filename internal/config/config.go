// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported storage backends for the on-device key-value store.
const (
	StorageBackendSQLite   = "sqlite"
	StorageBackendPostgres = "postgres"
	StorageBackendFile     = "file"
	StorageBackendMemory   = "memory"
)

// StructuredConfig is the top-level configuration container for the client.
// It aggregates all sub-configurations and is populated by merging defaults,
// an optional config file, environment variables, and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds log file settings.
	Log Log `envPrefix:"LOG_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file, selected by extension.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Language is the BCP 47 tag of the UI language (e.g. "en", "ru").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Backend is one of "sqlite", "postgres", "file" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the SQL database connection settings used by the sqlite and
	// postgres backends.
	DB DB `envPrefix:"DB_"`

	// Files holds the settings of the JSON file backend.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// DSN is a SQLite file path or a PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings for the JSON file backend.
type Files struct {
	// Path is the file holding the whole key-value store.
	// Env: STORAGE_FILES_PATH
	Path string `env:"PATH"`
}

// Log holds logging settings.
type Log struct {
	// Path is the file log entries are appended to.
	// Env: LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SessionClearRetryInterval is how often a failed session removal is
	// retried after logout.
	// Env: WORKERS_SESSION_CLEAR_RETRY_INTERVAL
	SessionClearRetryInterval time.Duration `env:"SESSION_CLEAR_RETRY_INTERVAL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Language: "en"},
		Storage: Storage{
			Backend: StorageBackendSQLite,
			DB:      DB{DSN: "auth.db"},
			Files:   Files{Path: "auth-store.json"},
		},
		Log: Log{
			Path:  "client.log",
			Level: "debug",
		},
		Workers: Workers{SessionClearRetryInterval: 30 * time.Second},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from env or flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		build()
}

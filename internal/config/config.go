// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// trade-journal binaries. It is populated by merging built-in defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds the journal database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings of journal-server.
	Server Server `envPrefix:"SERVER_"`

	// Presets holds the preset file override. It has no env prefix so that
	// the override variable keeps its historical name.
	Presets Presets

	// Adapter holds the settings the journal CLI uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the journal storage.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://..." and "postgresql://..." open
	// PostgreSQL, anything else is a SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Presets configures where bucket presets are loaded from.
type Presets struct {
	// Path, when set, is tried before every other location.
	// A leading "~" is expanded to the user's home directory.
	// Env: TRADE_JOURNAL_PRESETS_PATH
	Path string `env:"TRADE_JOURNAL_PRESETS_PATH"`
}

// Adapter holds the outbound HTTP settings used by the journal CLI.
type Adapter struct {
	// HTTPAddress is the journal-server base address, with or without
	// scheme (e.g. "localhost:8080" or "http://journal.lan:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[0], os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

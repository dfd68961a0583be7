// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the armqr
// server and the armqrctl client. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables,
// an optional settings file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the admin credentials,
	// the version string and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the state file and the target seeded
	// into a fresh one.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings armqrctl uses to reach a running server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// SettingsFilePath is the optional path to a JSON or YAML settings file.
	// When non-empty, the file is parsed and merged below the values already
	// loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	SettingsFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AdminUser is the basic-auth user name guarding the admin surface.
	// Env: APP_ADMIN_USER
	AdminUser string `env:"ADMIN_USER"`

	// AdminPassword is the plaintext admin password. Hashed with bcrypt at
	// startup and never kept in memory afterwards.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// AdminPasswordHash is a bcrypt hash of the admin password. Takes
	// precedence over AdminPassword when both are set.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel narrows the global zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence settings.
type Storage struct {
	// Files holds the state file settings.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the configuration state file.
type Files struct {
	// StateFilePath is the path of the JSON file holding all profiles.
	// Env: STORAGE_FILES_STATE_FILE_PATH
	StateFilePath string `env:"STATE_FILE_PATH"`

	// DefaultRedirect is the target of the profile written into a state
	// file that is missing or unusable at startup.
	// Env: STORAGE_FILES_DEFAULT_REDIRECT
	DefaultRedirect string `env:"DEFAULT_REDIRECT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the settings armqrctl uses to reach the admin API.
type Adapter struct {
	// HTTPAddress is the base URL of the armqr server
	// (e.g. "http://localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AdminUser is the basic-auth user name sent by the client.
	// Env: ADAPTER_ADMIN_USER
	AdminUser string `env:"ADMIN_USER"`
}

// Built-in defaults, applied below every other source.
const (
	DefaultHTTPAddress     = "localhost:8000"
	DefaultAdminUser       = "admin"
	DefaultStateFilePath   = "armqr.json"
	DefaultRedirect        = "https://astrid.tech"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultAdapterAddress  = "http://localhost:8000"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminUser: DefaultAdminUser,
		},
		Storage: Storage{
			Files: Files{
				StateFilePath:   DefaultStateFilePath,
				DefaultRedirect: DefaultRedirect,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
			AdminUser:      DefaultAdminUser,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (the first
// source holding a non-zero value for a field wins):
//  1. Command-line flags (os.Args)
//  2. Environment variables
//  3. Settings file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withSettingsFile().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

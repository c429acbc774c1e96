// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-persona-keeper application. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// client log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the encrypted record store and the
	// secure preferences database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Vault holds configuration for the key vault backends.
	Vault Vault `envPrefix:"VAULT_"`

	// Security holds user-facing security defaults. Attempt limits and the
	// lockout duration are constants.
	Security Security `envPrefix:"SECURITY_"`

	// Adapter holds configuration for the alias-forwarding HTTP API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the PERSONA_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Command holds the positional command-line arguments left after flag
	// parsing (the CLI sub-command and its operands).
	Command []string
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: PERSONA_APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the client log file. Empty means a "logs" file
	// next to the executable.
	// Env: PERSONA_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for both local databases.
type Storage struct {
	// Records holds the encrypted identity record store settings.
	Records Records `envPrefix:"RECORDS_"`

	// Prefs holds the secure preferences database settings.
	Prefs Prefs `envPrefix:"PREFS_"`
}

// Records holds settings of the SQLCipher-backed record store.
type Records struct {
	// Path is the database file path. It must be a real file: the backup
	// export encrypts its plaintext image.
	// Env: PERSONA_STORAGE_RECORDS_PATH
	Path string `env:"PATH"`
}

// Prefs holds settings of the secure preferences database.
type Prefs struct {
	// DSN is the SQLite data source name of the preferences database.
	// Env: PERSONA_STORAGE_PREFS_DSN
	DSN string `env:"DSN"`
}

// Vault holds key vault backend settings.
type Vault struct {
	// KeyDir is the directory holding trusted-tier key files and the
	// device salt. Created with 0700 permissions when missing.
	// Env: PERSONA_VAULT_KEY_DIR
	KeyDir string `env:"KEY_DIR"`

	// DisableIsolatedTier skips the OS keychain tier and always uses the
	// trusted software tier.
	// Env: PERSONA_VAULT_DISABLE_ISOLATED_TIER
	DisableIsolatedTier bool `env:"DISABLE_ISOLATED_TIER"`
}

// Security holds user-adjustable security defaults.
type Security struct {
	// DefaultAutoLockMinutes is the auto-lock timeout used until the user
	// picks one. 0 means "never auto-lock".
	// Env: PERSONA_SECURITY_DEFAULT_AUTO_LOCK_MINUTES
	DefaultAutoLockMinutes int `env:"DEFAULT_AUTO_LOCK_MINUTES"`
}

// Adapter holds configuration for the alias-forwarding API client.
type Adapter struct {
	// AliasBaseURL is the base URL of the alias API (e.g. "https://app.addy.io").
	// Empty disables the aliases command.
	// Env: PERSONA_ADAPTER_ALIAS_BASE_URL
	AliasBaseURL string `env:"ALIAS_BASE_URL"`

	// AliasToken is the bearer token for the alias API.
	// Env: PERSONA_ADAPTER_ALIAS_TOKEN
	AliasToken string `env:"ALIAS_TOKEN"`

	// RequestTimeout is the maximum duration of a single alias API request.
	// Env: PERSONA_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AutoLockInterval is how often the auto-lock job re-evaluates the
	// session.
	// Env: PERSONA_WORKERS_AUTO_LOCK_INTERVAL
	AutoLockInterval time.Duration `env:"AUTO_LOCK_INTERVAL"`
}

// defaultConfig returns the built-in configuration layer rooted at
// ~/.persona-keeper (or the working directory when no home is available).
func defaultConfig() *StructuredConfig {
	base := ".persona-keeper"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".persona-keeper")
	}

	return &StructuredConfig{
		App: App{
			Version: "dev",
			LogFile: filepath.Join(base, "client.log"),
		},
		Storage: Storage{
			Records: Records{Path: filepath.Join(base, "identities.db")},
			Prefs:   Prefs{DSN: filepath.Join(base, "prefs.db")},
		},
		Vault: Vault{
			KeyDir: filepath.Join(base, "keys"),
		},
		Security: Security{
			DefaultAutoLockMinutes: 5,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			AutoLockInterval: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

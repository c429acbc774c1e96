package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty record store path or an in-memory prefs DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates an empty key directory.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidAdapterConfigs indicates invalid alias adapter settings
	// (for example, a base URL without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero auto-lock check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSecurityConfigs indicates a negative default auto-lock value.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
)

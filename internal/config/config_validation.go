// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Records.Path == "" || strings.Contains(cfg.Storage.Records.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Prefs.DSN == "" || strings.Contains(cfg.Storage.Prefs.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Vault.KeyDir == "" {
		return ErrInvalidVaultConfigs
	}

	if cfg.Security.DefaultAutoLockMinutes < 0 {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Adapter.AliasBaseURL != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.AutoLockInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"PERSONA_CONFIG": "/path/to/config.json",

		"PERSONA_APP_VERSION":  "1.2.3",
		"PERSONA_APP_LOG_FILE": "/var/log/persona.log",

		"PERSONA_STORAGE_RECORDS_PATH": "/data/identities.db",
		"PERSONA_STORAGE_PREFS_DSN":    "/data/prefs.db",

		"PERSONA_VAULT_KEY_DIR":               "/data/keys",
		"PERSONA_VAULT_DISABLE_ISOLATED_TIER": "true",

		"PERSONA_SECURITY_DEFAULT_AUTO_LOCK_MINUTES": "7",

		"PERSONA_ADAPTER_ALIAS_BASE_URL":  "https://alias.example",
		"PERSONA_ADAPTER_ALIAS_TOKEN":     "token",
		"PERSONA_ADAPTER_REQUEST_TIMEOUT": "30s",

		"PERSONA_WORKERS_AUTO_LOCK_INTERVAL": "10s",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/log/persona.log", cfg.App.LogFile)
	assert.Equal(t, "/data/identities.db", cfg.Storage.Records.Path)
	assert.Equal(t, "/data/prefs.db", cfg.Storage.Prefs.DSN)
	assert.Equal(t, "/data/keys", cfg.Vault.KeyDir)
	assert.True(t, cfg.Vault.DisableIsolatedTier)
	assert.Equal(t, 7, cfg.Security.DefaultAutoLockMinutes)
	assert.Equal(t, "https://alias.example", cfg.Adapter.AliasBaseURL)
	assert.Equal(t, "token", cfg.Adapter.AliasToken)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Workers.AutoLockInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("PERSONA_WORKERS_AUTO_LOCK_INTERVAL", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Records struct {
			Path string `json:"path"`
		} `json:"records,omitempty"`

		Prefs struct {
			DSN string `json:"dsn"`
		} `json:"prefs,omitempty"`
	} `json:"storage,omitempty"`

	Vault struct {
		KeyDir              string `json:"key_dir"`
		DisableIsolatedTier bool   `json:"disable_isolated_tier"`
	} `json:"vault,omitempty"`

	Security struct {
		DefaultAutoLockMinutes int `json:"default_auto_lock_minutes"`
	} `json:"security,omitempty"`

	Adapter struct {
		AliasBaseURL   string   `json:"alias_base_url"`
		AliasToken     string   `json:"alias_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		AutoLockInterval Duration `json:"auto_lock_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Records: Records{Path: jsonCfg.Storage.Records.Path},
			Prefs:   Prefs{DSN: jsonCfg.Storage.Prefs.DSN},
		},
		Vault: Vault{
			KeyDir:              jsonCfg.Vault.KeyDir,
			DisableIsolatedTier: jsonCfg.Vault.DisableIsolatedTier,
		},
		Security: Security{
			DefaultAutoLockMinutes: jsonCfg.Security.DefaultAutoLockMinutes,
		},
		Adapter: Adapter{
			AliasBaseURL:   jsonCfg.Adapter.AliasBaseURL,
			AliasToken:     jsonCfg.Adapter.AliasToken,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			AutoLockInterval: time.Duration(jsonCfg.Workers.AutoLockInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

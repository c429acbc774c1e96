package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args. Positional arguments
// remaining after the flags are returned in [StructuredConfig.Command].
//
// Flags:
//
//	-r records database path
//	-p preferences database DSN
//	-k key directory
//	-log-file client log file path
//	-c/-config json file path with configs
//	-no-isolated-tier skip the OS keychain key tier
//	-default-autolock default auto-lock minutes
//	-alias-url alias API base URL
//	-alias-token alias API bearer token
//	-request-timeout alias API request timeout (e.g., "15s")
//	-autolock-interval auto-lock check interval (e.g., "15s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("persona-keeper", flag.ContinueOnError)

	var (
		recordsPath      string
		prefsDSN         string
		keyDir           string
		logFile          string
		jsonConfigPath   string
		noIsolatedTier   bool
		defaultAutoLock  int
		aliasURL         string
		aliasToken       string
		requestTimeout   time.Duration
		autoLockInterval time.Duration
	)

	fs.StringVar(&recordsPath, "r", "", "Records database path")
	fs.StringVar(&prefsDSN, "p", "", "Preferences database DSN")
	fs.StringVar(&keyDir, "k", "", "Key directory")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&noIsolatedTier, "no-isolated-tier", false, "Skip the OS keychain key tier")
	fs.IntVar(&defaultAutoLock, "default-autolock", 0, "Default auto-lock minutes")
	fs.StringVar(&aliasURL, "alias-url", "", "Alias API base URL")
	fs.StringVar(&aliasToken, "alias-token", "", "Alias API bearer token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Alias API request timeout (e.g., 15s)")
	fs.DurationVar(&autoLockInterval, "autolock-interval", 0, "Auto-lock check interval (e.g., 15s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Storage: Storage{
			Records: Records{Path: recordsPath},
			Prefs:   Prefs{DSN: prefsDSN},
		},
		Vault: Vault{
			KeyDir:              keyDir,
			DisableIsolatedTier: noIsolatedTier,
		},
		Security: Security{
			DefaultAutoLockMinutes: defaultAutoLock,
		},
		Adapter: Adapter{
			AliasBaseURL:   aliasURL,
			AliasToken:     aliasToken,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			AutoLockInterval: autoLockInterval,
		},
		JSONFilePath: jsonConfigPath,
		Command:      fs.Args(),
	}, nil
}

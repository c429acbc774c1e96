package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-persona-keeper/internal/client"
	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/tui"
	"github.com/MKhiriev/go-persona-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}
	buildInfo := newBuildInfo(cfg.App)

	if len(cfg.Command) > 0 && cfg.Command[0] == cmdVersion {
		printBuildInfo(buildInfo)
		return 0
	}

	log := logger.NewClientLogger("persona-client", cfg.App.LogFile)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := client.NewApp(ctx, *cfg, tui.New(buildInfo, log), log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer app.Close()

	c := newCLI(app, os.Stdin, os.Stdout)
	if err = c.execute(ctx, cfg.Command); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return 1
		}
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// newBuildInfo falls back to the configured version when none was linked in.
func newBuildInfo(cfg config.App) models.AppBuildInfo {
	version := buildVersion
	if version == "" {
		version = cfg.Version
	}
	return models.NewAppBuildInfo(version, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-persona-keeper/internal/config"
)

func TestNewBuildInfo_LinkedVersionWins(t *testing.T) {
	prev := buildVersion
	t.Cleanup(func() { buildVersion = prev })

	buildVersion = "1.3.0"
	assert.Equal(t, "1.3.0", newBuildInfo(config.App{Version: "dev"}).BuildVersion())
}

func TestNewBuildInfo_FallsBackToConfig(t *testing.T) {
	prev := buildVersion
	t.Cleanup(func() { buildVersion = prev })

	buildVersion = ""
	assert.Equal(t, "dev", newBuildInfo(config.App{Version: "dev"}).BuildVersion())
}

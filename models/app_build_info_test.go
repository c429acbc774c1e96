package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Lines(t *testing.T) {
	info := NewAppBuildInfo(" 1.4.0 ", "2026-10-01", "")

	assert.Equal(t, "1.4.0", info.BuildVersion())
	assert.Equal(t, []string{
		"Version: 1.4.0",
		"Date: 2026-10-01",
		"Commit: N/A",
	}, info.Lines())
}

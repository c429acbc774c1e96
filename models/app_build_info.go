// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// notAvailable is shown for build metadata that was not injected at link time.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags into the client
// binary. It is printed by the version command and the about page.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// Lines renders the metadata as "Label: value" lines, with N/A for missing
// values.
func (a AppBuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Version: %s", orNotAvailable(a.buildVersion)),
		fmt.Sprintf("Date: %s", orNotAvailable(a.buildDate)),
		fmt.Sprintf("Commit: %s", orNotAvailable(a.buildCommit)),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

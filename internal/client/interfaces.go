// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/service"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface the application drives.
type UI interface {
	// Unlock blocks until coordinator reports StateAuthenticated or the user
	// gives up.
	Unlock(ctx context.Context, coordinator auth.Coordinator) error

	// SetupPin asks for a new PIN and stores it in creds.
	SetupPin(ctx context.Context, creds credential.Store) error

	// Identities runs the unlocked main screen and reports whether it ended
	// because the app was locked.
	Identities(ctx context.Context, identities service.IdentityService, policy session.Policy, coordinator auth.Coordinator) (locked bool, err error)

	// NotifyLocked tells a running screen that the app was locked.
	NotifyLocked()
}

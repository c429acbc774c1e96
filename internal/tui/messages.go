package tui

import (
	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/models"
)

// stateMsg carries an auth.State returned by a coordinator call.
type stateMsg struct {
	state auth.State
}

// watchedStateMsg carries an auth.State received on the Watch channel.
// Handling it re-arms the single channel reader.
type watchedStateMsg struct {
	state auth.State
}

// watchClosedMsg is sent once the coordinator subscription is cancelled.
type watchClosedMsg struct{}

type pinResultMsg struct {
	result auth.Result
}

type lockoutTickMsg struct{}

type pinSavedMsg struct {
	err error
}

type listLoadedMsg struct {
	items []models.Identity
	err   error
}

type identitySavedMsg struct {
	identity models.Identity
	err      error
}

type identityDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

// lockedMsg is sent from outside the program when the app was locked.
type lockedMsg struct{}

// lockSkippedMsg reports a lock request while no unlock method is set.
type lockSkippedMsg struct{}

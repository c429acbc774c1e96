// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the unlock state machine: entry rules, the
// biometric prompt with PIN fallback, PIN verification with attempt
// lockout, and session reuse.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
	"github.com/MKhiriev/go-persona-keeper/internal/utils"
)

const (
	promptTitle = "Unlock Persona Keeper"

	msgRequiresAuth       = "Authenticate to continue."
	msgBiometricRetry     = "Not recognized. Try again."
	msgBiometricLockedOut = "Too many biometric attempts. Use your PIN."
	msgNoUnlockMethod     = "Biometric unlock failed and no PIN is set."
	msgVerifyFailed       = "Could not verify PIN."
)

type coordinator struct {
	creds   credential.Store
	policy  session.Policy
	lockout session.Lockout
	bio     Biometric
	logger  *logger.Logger

	state *utils.Observable[State]

	mu        sync.Mutex
	bioCancel context.CancelFunc
	bioSeq    uint64
}

// NewCoordinator returns a coordinator in StateRequiresAuth. Call Activate
// to apply the entry rules.
func NewCoordinator(creds credential.Store, policy session.Policy, lockout session.Lockout, bio Biometric, log *logger.Logger) Coordinator {
	if bio == nil {
		bio = Unsupported()
	}
	return &coordinator{
		creds:   creds,
		policy:  policy,
		lockout: lockout,
		bio:     bio,
		logger:  log.GetChildLogger("auth"),
		state:   utils.NewObservable[State](StateRequiresAuth{Message: msgRequiresAuth}),
	}
}

func (c *coordinator) State() State {
	return c.state.Get()
}

func (c *coordinator) Watch() (<-chan State, func()) {
	return c.state.Subscribe()
}

func (c *coordinator) Activate(ctx context.Context) State {
	c.mu.Lock()
	st := c.entryState(ctx)
	c.publish(st)
	c.mu.Unlock()

	if ra, ok := st.(StateRequiresAuth); ok && ra.BiometricAvailable {
		return c.TriggerBiometric(ctx)
	}
	return st
}

// entryState applies the activation rules in order. Callers hold c.mu.
func (c *coordinator) entryState(ctx context.Context) State {
	hasPin, err := c.creds.HasPin(ctx)
	if err != nil {
		return c.fail(err, "credential.HasPin")
	}
	if !hasPin && !c.creds.BiometricEnabled() {
		c.logger.Info().Msg("no unlock method configured")
		return StateAuthenticated{}
	}

	active, err := c.policy.HasActiveSession(ctx)
	if err != nil {
		return c.fail(err, "session.HasActiveSession")
	}
	if active {
		c.logger.Debug().Msg("reusing active session")
		return StateAuthenticated{}
	}

	if st, locked := c.lockedOutState(ctx); locked {
		return st
	}

	return c.requiresAuth(hasPin)
}

func (c *coordinator) TriggerBiometric(ctx context.Context) State {
	c.mu.Lock()
	if st, locked := c.lockedOutState(ctx); locked {
		c.publish(st)
		c.mu.Unlock()
		return st
	}
	if !c.biometricAvailable() {
		st := c.state.Get()
		c.mu.Unlock()
		return st
	}

	c.cancelBiometric()
	bioCtx, cancel := context.WithCancel(ctx)
	c.bioCancel = cancel
	c.bioSeq++
	seq := c.bioSeq
	c.publish(StateBiometricInProgress{})
	c.mu.Unlock()
	defer cancel()

	challenge := c.bio.Authenticate(bioCtx, promptTitle)
	for ev := range challenge.Events() {
		c.mu.Lock()
		if seq != c.bioSeq {
			// superseded by the PIN dialog, a lock or a newer prompt
			st := c.state.Get()
			c.mu.Unlock()
			return st
		}

		var st State
		switch e := ev.(type) {
		case EventFailed:
			c.publish(StateBiometricInProgress{Hint: msgBiometricRetry})
			c.mu.Unlock()
			continue
		case EventSucceeded:
			st = c.authenticated(ctx, "biometric")
		case EventError:
			st = c.biometricError(ctx, e)
		}
		c.bioCancel = nil
		c.publish(st)
		c.mu.Unlock()
		return st
	}

	// closed without a terminal event
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.bioSeq {
		return c.state.Get()
	}
	c.bioCancel = nil
	st := c.biometricError(ctx, EventError{Code: ErrorCanceled, Message: "Biometric prompt closed."})
	c.publish(st)
	return st
}

func (c *coordinator) biometricError(ctx context.Context, e EventError) State {
	log := c.logger.With().Int("code", e.Code).Logger()

	if !isRecoverable(e.Code) {
		log.Warn().Msg("biometric error")
		return StateError{Message: e.Message}
	}

	hasPin, err := c.creds.HasPin(ctx)
	if err != nil {
		return c.fail(err, "credential.HasPin")
	}
	if !hasPin {
		log.Warn().Msg("biometric unavailable and no pin fallback")
		return StateError{Message: msgNoUnlockMethod}
	}

	log.Info().Msg("falling back to pin")
	hint := ""
	if e.Code == ErrorLockout || e.Code == ErrorLockoutPermanent {
		hint = msgBiometricLockedOut
	}
	return StatePinInProgress{Hint: hint}
}

func (c *coordinator) VerifyPin(ctx context.Context, pin []byte) Result {
	defer crypto.Wipe(pin)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelBiometric()

	if st, locked := c.lockedOutState(ctx); locked {
		c.publish(st)
		if lo, ok := st.(StateLockedOut); ok {
			return ResultLockedOut{DurationSeconds: lo.RemainingSeconds}
		}
		return ResultError{Message: msgVerifyFailed}
	}

	match, err := c.creds.VerifyPin(ctx, pin)
	if err != nil {
		c.publish(c.fail(err, "credential.VerifyPin"))
		return ResultError{Message: msgVerifyFailed}
	}

	if match {
		st := c.authenticated(ctx, "pin")
		c.publish(st)
		if e, ok := st.(StateError); ok {
			return ResultError{Message: e.Message}
		}
		return ResultSuccess{}
	}

	attempt, err := c.lockout.RecordFailedAttempt(ctx)
	if err != nil {
		c.publish(c.fail(err, "session.RecordFailedAttempt"))
		return ResultError{Message: msgVerifyFailed}
	}
	if attempt.LockedOut {
		seconds := int(session.LockoutDuration.Seconds())
		c.publish(StateLockedOut{RemainingSeconds: seconds})
		return ResultLockedOut{DurationSeconds: seconds}
	}

	msg := incorrectPinMessage(attempt.Remaining)
	c.publish(StatePinInProgress{Hint: msg})
	return ResultFailed{Message: msg, AttemptsRemaining: attempt.Remaining}
}

func (c *coordinator) ShowPinDialog(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelBiometric()

	if st, locked := c.lockedOutState(ctx); locked {
		c.publish(st)
		return st
	}

	hasPin, err := c.creds.HasPin(ctx)
	if err != nil {
		st := c.fail(err, "credential.HasPin")
		c.publish(st)
		return st
	}
	if !hasPin {
		return c.state.Get()
	}

	st := StatePinInProgress{}
	c.publish(st)
	return st
}

func (c *coordinator) DismissPinDialog(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.Get().(StatePinInProgress); !ok {
		return c.state.Get()
	}

	st := c.currentRequiresAuth(ctx)
	c.publish(st)
	return st
}

func (c *coordinator) RefreshLockoutTimer(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.Get().(StateLockedOut); !ok {
		return c.state.Get()
	}

	remaining, err := c.lockout.LockoutRemaining(ctx)
	if err != nil {
		st := c.fail(err, "session.LockoutRemaining")
		c.publish(st)
		return st
	}

	var st State = StateLockedOut{RemainingSeconds: remaining}
	if remaining == 0 {
		c.logger.Info().Msg("lockout over")
		st = c.currentRequiresAuth(ctx)
	}
	c.publish(st)
	return st
}

func (c *coordinator) Lock(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelBiometric()

	// without an unlock method there is nothing to lock
	hasPin, err := c.creds.HasPin(ctx)
	if err != nil {
		st := c.fail(err, "credential.HasPin")
		c.publish(st)
		return st
	}
	if !hasPin && !c.creds.BiometricEnabled() {
		st := StateAuthenticated{}
		c.publish(st)
		return st
	}

	if err := c.policy.EndSession(ctx); err != nil {
		c.logger.Err(err).Str("func", "coordinator.Lock").Msg("error ending session")
	}

	st := c.currentRequiresAuth(ctx)
	c.publish(st)
	c.logger.Info().Msg("locked")
	return st
}

func (c *coordinator) currentRequiresAuth(ctx context.Context) State {
	if st, locked := c.lockedOutState(ctx); locked {
		return st
	}
	hasPin, err := c.creds.HasPin(ctx)
	if err != nil {
		return c.fail(err, "credential.HasPin")
	}
	return c.requiresAuth(hasPin)
}

func (c *coordinator) requiresAuth(hasPin bool) State {
	return StateRequiresAuth{
		BiometricAvailable: c.biometricAvailable(),
		PinAvailable:       hasPin,
		Message:            msgRequiresAuth,
	}
}

// lockedOutState returns StateLockedOut, or StateError when the lockout
// cannot be read, with locked reporting whether either applies.
func (c *coordinator) lockedOutState(ctx context.Context) (State, bool) {
	remaining, err := c.lockout.LockoutRemaining(ctx)
	if err != nil {
		return c.fail(err, "session.LockoutRemaining"), true
	}
	if remaining > 0 {
		return StateLockedOut{RemainingSeconds: remaining}, true
	}
	return nil, false
}

func (c *coordinator) authenticated(ctx context.Context, method string) State {
	if err := c.lockout.ResetFailedAttempts(ctx); err != nil {
		return c.fail(err, "session.ResetFailedAttempts")
	}
	if err := c.policy.StartSession(ctx); err != nil {
		return c.fail(err, "session.StartSession")
	}
	c.logger.Info().Str("method", method).Msg("authenticated")
	return StateAuthenticated{}
}

func (c *coordinator) biometricAvailable() bool {
	return c.creds.BiometricEnabled() && c.bio.Capability() == CapabilityAvailable
}

// cancelBiometric abandons an in-flight prompt. Callers hold c.mu.
func (c *coordinator) cancelBiometric() {
	if c.bioCancel == nil {
		return
	}
	c.bioCancel()
	c.bioCancel = nil
	c.bioSeq++
}

func (c *coordinator) publish(st State) {
	c.state.Set(st)
}

func (c *coordinator) fail(err error, fn string) State {
	c.logger.Err(err).Str("func", fn).Msg("unlock step failed")

	msg := "Unlock failed."
	if errors.Is(err, credential.ErrPinNotSet) {
		msg = "No PIN is set."
	}
	return StateError{Message: msg}
}

func isRecoverable(code int) bool {
	switch code {
	case ErrorUserCanceled, ErrorNegativeButton, ErrorNoBiometrics,
		ErrorHardwareUnavailable, ErrorHardwareNotPresent,
		ErrorLockout, ErrorLockoutPermanent:
		return true
	default:
		return false
	}
}

func incorrectPinMessage(remaining int) string {
	if remaining == 1 {
		return "Incorrect PIN, 1 attempt remaining."
	}
	return fmt.Sprintf("Incorrect PIN, %d attempts remaining.", remaining)
}

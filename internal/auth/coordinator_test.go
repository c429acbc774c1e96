package auth

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/keyvault/vaulttest"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
	"github.com/MKhiriev/go-persona-keeper/internal/store/storetest"
)

const testPin = "2468"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeBiometric runs script against every challenge. A nil script keeps the
// prompt open until its context is cancelled.
type fakeBiometric struct {
	capability Capability
	script     func(ctx context.Context, c *Challenge)
	calls      atomic.Int32
}

func (f *fakeBiometric) Capability() Capability {
	return f.capability
}

func (f *fakeBiometric) Authenticate(ctx context.Context, _ string) *Challenge {
	f.calls.Add(1)
	c := NewChallenge()
	go func() {
		if f.script != nil {
			f.script(ctx, c)
			return
		}
		<-ctx.Done()
		c.Error(ErrorCanceled, "canceled")
	}()
	return c
}

func succeed(_ context.Context, c *Challenge) { c.Succeed() }

func biometricError(code int) func(context.Context, *Challenge) {
	return func(_ context.Context, c *Challenge) { c.Error(code, "biometric error") }
}

type harness struct {
	coord    Coordinator
	creds    credential.Store
	sessions *session.Manager
	clock    *fakeClock
	bio      *fakeBiometric
}

func newHarness(t *testing.T, pin string, biometric bool) *harness {
	t.Helper()
	ctx := context.Background()

	prefs := storetest.NewPreferences(t)
	creds, err := credential.NewStore(ctx, prefs, vaulttest.NewVault(t, prefs), config.Security{DefaultAutoLockMinutes: 5}, logger.Nop())
	require.NoError(t, err)

	if pin != "" {
		require.NoError(t, creds.SetPin(ctx, []byte(pin)))
	}
	if biometric {
		require.NoError(t, creds.SetBiometricEnabled(ctx, true))
	}

	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	sessions := session.NewManager(prefs, creds, clock, logger.Nop())
	bio := &fakeBiometric{capability: CapabilityAvailable}

	return &harness{
		coord:    NewCoordinator(creds, sessions, sessions, bio, logger.Nop()),
		creds:    creds,
		sessions: sessions,
		clock:    clock,
		bio:      bio,
	}
}

func (h *harness) lockOut(t *testing.T) {
	t.Helper()
	for range session.MaxPinAttempts {
		h.coord.VerifyPin(context.Background(), []byte("0000"))
	}
	require.IsType(t, StateLockedOut{}, h.coord.State())
}

// ── Activate ──────────────────────────────────────────────────────────────────

func TestActivate_NoMethodConfigured(t *testing.T) {
	h := newHarness(t, "", false)

	assert.Equal(t, StateAuthenticated{}, h.coord.Activate(context.Background()))
	assert.Zero(t, h.bio.calls.Load())
}

func TestActivate_ReusesActiveSession(t *testing.T) {
	h := newHarness(t, testPin, true)
	ctx := context.Background()
	require.NoError(t, h.sessions.StartSession(ctx))
	h.clock.Advance(4 * time.Minute)

	assert.Equal(t, StateAuthenticated{}, h.coord.Activate(ctx))
	assert.Zero(t, h.bio.calls.Load())
}

func TestActivate_ExpiredSessionRequiresAuth(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()
	require.NoError(t, h.sessions.StartSession(ctx))
	h.clock.Advance(6 * time.Minute)

	assert.Equal(t, StateRequiresAuth{
		PinAvailable: true,
		Message:      msgRequiresAuth,
	}, h.coord.Activate(ctx))
}

func TestActivate_PinOnly(t *testing.T) {
	h := newHarness(t, testPin, false)

	st := h.coord.Activate(context.Background())
	assert.Equal(t, StateRequiresAuth{PinAvailable: true, Message: msgRequiresAuth}, st)
	assert.Zero(t, h.bio.calls.Load())
}

func TestActivate_BiometricNotEnrolledOnDevice(t *testing.T) {
	h := newHarness(t, testPin, true)
	h.bio.capability = CapabilityNotEnrolled

	st := h.coord.Activate(context.Background())
	assert.Equal(t, StateRequiresAuth{PinAvailable: true, Message: msgRequiresAuth}, st)
	assert.Zero(t, h.bio.calls.Load())
}

func TestActivate_AutoTriggersBiometric(t *testing.T) {
	h := newHarness(t, testPin, true)
	h.bio.script = succeed
	ctx := context.Background()

	assert.Equal(t, StateAuthenticated{}, h.coord.Activate(ctx))
	assert.EqualValues(t, 1, h.bio.calls.Load())

	active, err := h.sessions.HasActiveSession(ctx)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestActivate_LockedOutBlocksEveryMethod(t *testing.T) {
	h := newHarness(t, testPin, true)
	h.bio.capability = CapabilityUnavailable
	h.lockOut(t)
	h.bio.capability = CapabilityAvailable
	h.bio.script = succeed

	st := h.coord.Activate(context.Background())
	assert.Equal(t, StateLockedOut{RemainingSeconds: 300}, st)
	assert.Zero(t, h.bio.calls.Load())

	assert.Equal(t, st, h.coord.TriggerBiometric(context.Background()))
	assert.Zero(t, h.bio.calls.Load())
}

// ── Biometric outcomes ────────────────────────────────────────────────────────

func TestTriggerBiometric_NonMatchThenSuccess(t *testing.T) {
	h := newHarness(t, testPin, true)
	ctx := context.Background()
	require.NoError(t, h.sessions.ResetFailedAttempts(ctx))
	h.coord.VerifyPin(ctx, []byte("0000"))

	release := make(chan struct{})
	h.bio.script = func(_ context.Context, c *Challenge) {
		c.Fail()
		<-release
		c.Succeed()
	}

	states, cancel := h.coord.Watch()
	defer cancel()

	done := make(chan State, 1)
	go func() { done <- h.coord.TriggerBiometric(ctx) }()

	waitFor(t, states, StateBiometricInProgress{Hint: msgBiometricRetry})
	close(release)

	assert.Equal(t, StateAuthenticated{}, <-done)

	left, err := h.sessions.RemainingAttempts(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.MaxPinAttempts, left)
}

func TestTriggerBiometric_Errors(t *testing.T) {
	tests := []struct {
		name string
		pin  string
		code int
		want State
	}{
		{name: "user canceled falls back", pin: testPin, code: ErrorUserCanceled, want: StatePinInProgress{}},
		{name: "negative button falls back", pin: testPin, code: ErrorNegativeButton, want: StatePinInProgress{}},
		{name: "no biometrics falls back", pin: testPin, code: ErrorNoBiometrics, want: StatePinInProgress{}},
		{name: "hardware unavailable falls back", pin: testPin, code: ErrorHardwareUnavailable, want: StatePinInProgress{}},
		{name: "hardware absent falls back", pin: testPin, code: ErrorHardwareNotPresent, want: StatePinInProgress{}},
		{name: "lockout falls back with hint", pin: testPin, code: ErrorLockout, want: StatePinInProgress{Hint: msgBiometricLockedOut}},
		{name: "permanent lockout falls back with hint", pin: testPin, code: ErrorLockoutPermanent, want: StatePinInProgress{Hint: msgBiometricLockedOut}},
		{name: "recoverable without pin", code: ErrorUserCanceled, want: StateError{Message: msgNoUnlockMethod}},
		{name: "vendor error", pin: testPin, code: ErrorVendor, want: StateError{Message: "biometric error"}},
		{name: "timeout", pin: testPin, code: ErrorTimeout, want: StateError{Message: "biometric error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.pin, true)
			h.bio.script = biometricError(tt.code)

			assert.Equal(t, tt.want, h.coord.Activate(context.Background()))
			assert.Equal(t, tt.want, h.coord.State())
		})
	}
}

func TestShowPinDialog_CancelsBiometricPrompt(t *testing.T) {
	h := newHarness(t, testPin, true)
	ctx := context.Background()

	states, cancel := h.coord.Watch()
	defer cancel()

	done := make(chan State, 1)
	go func() { done <- h.coord.Activate(ctx) }()
	waitFor(t, states, StateBiometricInProgress{})

	assert.Equal(t, StatePinInProgress{}, h.coord.ShowPinDialog(ctx))
	assert.Equal(t, StatePinInProgress{}, <-done)
	assert.Equal(t, StatePinInProgress{}, h.coord.State())
}

// ── VerifyPin ─────────────────────────────────────────────────────────────────

func TestVerifyPin_Success(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()
	h.coord.Activate(ctx)

	assert.Equal(t, ResultSuccess{}, h.coord.VerifyPin(ctx, []byte(testPin)))
	assert.Equal(t, StateAuthenticated{}, h.coord.State())

	active, err := h.sessions.HasActiveSession(ctx)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestVerifyPin_WrongPinCountsDown(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()

	assert.Equal(t, ResultFailed{
		Message:           "Incorrect PIN, 4 attempts remaining.",
		AttemptsRemaining: 4,
	}, h.coord.VerifyPin(ctx, []byte("1111")))
	assert.Equal(t, StatePinInProgress{Hint: "Incorrect PIN, 4 attempts remaining."}, h.coord.State())

	for range 2 {
		h.coord.VerifyPin(ctx, []byte("1111"))
	}
	assert.Equal(t, ResultFailed{
		Message:           "Incorrect PIN, 1 attempt remaining.",
		AttemptsRemaining: 1,
	}, h.coord.VerifyPin(ctx, []byte("1111")))
}

func TestVerifyPin_WipesBuffer(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()

	wrong := []byte("9999")
	h.coord.VerifyPin(ctx, wrong)
	assert.Equal(t, make([]byte, 4), wrong)

	h.lockOut(t)
	locked := []byte(testPin)
	h.coord.VerifyPin(ctx, locked)
	assert.Equal(t, make([]byte, 4), locked)
}

func TestVerifyPin_NoPinIsError(t *testing.T) {
	h := newHarness(t, "", true)

	assert.Equal(t, ResultError{Message: msgVerifyFailed}, h.coord.VerifyPin(context.Background(), []byte("1234")))
	assert.IsType(t, StateError{}, h.coord.State())
}

func TestVerifyPin_LockoutAfterMaxAttempts(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()

	for range session.MaxPinAttempts - 1 {
		assert.IsType(t, ResultFailed{}, h.coord.VerifyPin(ctx, []byte("0000")))
	}
	assert.Equal(t, ResultLockedOut{DurationSeconds: 300}, h.coord.VerifyPin(ctx, []byte("0000")))
	assert.Equal(t, StateLockedOut{RemainingSeconds: 300}, h.coord.State())

	h.clock.Advance(10 * time.Second)
	assert.Equal(t, ResultLockedOut{DurationSeconds: 290}, h.coord.VerifyPin(ctx, []byte(testPin)))
	assert.Equal(t, StateLockedOut{RemainingSeconds: 290}, h.coord.State())
}

func TestVerifyPin_LockoutExpiryRestoresBudget(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()
	h.lockOut(t)

	h.clock.Advance(299 * time.Second)
	assert.Equal(t, StateLockedOut{RemainingSeconds: 1}, h.coord.RefreshLockoutTimer(ctx))

	h.clock.Advance(time.Second)
	assert.Equal(t, StateRequiresAuth{PinAvailable: true, Message: msgRequiresAuth}, h.coord.RefreshLockoutTimer(ctx))

	left, err := h.sessions.RemainingAttempts(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.MaxPinAttempts, left)

	assert.Equal(t, ResultSuccess{}, h.coord.VerifyPin(ctx, []byte(testPin)))
}

// ── Dialogs, timer and lock ───────────────────────────────────────────────────

func TestDismissPinDialog_DoesNotCountAttempt(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()

	assert.Equal(t, StatePinInProgress{}, h.coord.ShowPinDialog(ctx))
	assert.Equal(t, StateRequiresAuth{PinAvailable: true, Message: msgRequiresAuth}, h.coord.DismissPinDialog(ctx))

	left, err := h.sessions.RemainingAttempts(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.MaxPinAttempts, left)
}

func TestDismissPinDialog_IgnoredOutsideDialog(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()
	h.lockOut(t)

	assert.IsType(t, StateLockedOut{}, h.coord.DismissPinDialog(ctx))
}

func TestShowPinDialog_WithoutPinKeepsState(t *testing.T) {
	h := newHarness(t, "", true)
	h.bio.capability = CapabilityUnavailable
	ctx := context.Background()

	before := h.coord.Activate(ctx)
	assert.Equal(t, before, h.coord.ShowPinDialog(ctx))
}

func TestRefreshLockoutTimer_IgnoredWhenNotLockedOut(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()
	h.coord.Activate(ctx)

	assert.IsType(t, StateRequiresAuth{}, h.coord.RefreshLockoutTimer(ctx))
}

func TestLock_EndsSession(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()

	require.Equal(t, ResultSuccess{}, h.coord.VerifyPin(ctx, []byte(testPin)))

	assert.Equal(t, StateRequiresAuth{PinAvailable: true, Message: msgRequiresAuth}, h.coord.Lock(ctx))

	active, err := h.sessions.HasActiveSession(ctx)
	require.NoError(t, err)
	assert.False(t, active)

	assert.IsType(t, StateRequiresAuth{}, h.coord.Activate(ctx))
}

func TestLock_WithoutUnlockMethodStaysAuthenticated(t *testing.T) {
	h := newHarness(t, "", false)
	ctx := context.Background()

	require.Equal(t, StateAuthenticated{}, h.coord.Activate(ctx))

	assert.Equal(t, StateAuthenticated{}, h.coord.Lock(ctx))
	assert.Equal(t, StateAuthenticated{}, h.coord.State())
}

func TestWatch_ReceivesTransitions(t *testing.T) {
	h := newHarness(t, testPin, false)
	ctx := context.Background()

	states, cancel := h.coord.Watch()
	defer cancel()
	waitFor(t, states, StateRequiresAuth{Message: msgRequiresAuth})

	h.coord.ShowPinDialog(ctx)
	waitFor(t, states, StatePinInProgress{})

	h.coord.VerifyPin(ctx, []byte(testPin))
	waitFor(t, states, StateAuthenticated{})
}

func waitFor(t *testing.T, states <-chan State, want State) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-states:
			if st == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %#v", want)
		}
	}
}

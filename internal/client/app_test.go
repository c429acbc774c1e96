package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-persona-keeper/internal/adapter"
	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/service"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
	"github.com/MKhiriev/go-persona-keeper/internal/tui"
)

// fakeUI answers the unlock screen with a scripted PIN, or gives up when
// pin is empty.
type fakeUI struct {
	pin        string
	newPin     string
	unlockRuns int
}

func (f *fakeUI) Unlock(ctx context.Context, coordinator auth.Coordinator) error {
	f.unlockRuns++
	if f.pin == "" {
		return tui.ErrUserQuit
	}
	coordinator.ShowPinDialog(ctx)
	if _, ok := coordinator.VerifyPin(ctx, []byte(f.pin)).(auth.ResultSuccess); !ok {
		return tui.ErrUserQuit
	}
	return nil
}

func (f *fakeUI) SetupPin(ctx context.Context, creds credential.Store) error {
	return creds.SetPin(ctx, []byte(f.newPin))
}

func (f *fakeUI) Identities(context.Context, service.IdentityService, session.Policy, auth.Coordinator) (bool, error) {
	return false, nil
}

func (f *fakeUI) NotifyLocked() {}

func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()
	dir := t.TempDir()
	return config.StructuredConfig{
		App: config.App{Version: "test"},
		Storage: config.Storage{
			Records: config.Records{Path: filepath.Join(dir, "identities.db")},
			Prefs:   config.Prefs{DSN: filepath.Join(dir, "prefs.db")},
		},
		Vault:    config.Vault{KeyDir: filepath.Join(dir, "keys"), DisableIsolatedTier: true},
		Security: config.Security{DefaultAutoLockMinutes: 5},
	}
}

func newTestApp(t *testing.T, cfg config.StructuredConfig, ui UI) *App {
	t.Helper()
	app, err := NewApp(context.Background(), cfg, ui, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

// ── Status / settings ────────────────────────────────────────────────────────

func TestApp_FreshInstallStatus(t *testing.T) {
	app := newTestApp(t, testConfig(t), &fakeUI{})

	st, err := app.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Status{AutoLockMinutes: 5, Session: session.NoSession}, st)
}

func TestApp_SettingsWithoutPinNeedNoUnlock(t *testing.T) {
	ui := &fakeUI{}
	app := newTestApp(t, testConfig(t), ui)
	ctx := context.Background()

	require.NoError(t, app.SetAutoLock(ctx, 10))

	st, err := app.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, st.AutoLockMinutes)
	assert.Zero(t, ui.unlockRuns)
}

func TestApp_BiometricUnavailable(t *testing.T) {
	app := newTestApp(t, testConfig(t), &fakeUI{})

	assert.ErrorIs(t, app.SetBiometric(context.Background(), true), ErrBiometricUnavailable)
	assert.NoError(t, app.SetBiometric(context.Background(), false))
}

// ── PIN gating ───────────────────────────────────────────────────────────────

func TestApp_PinGatesCommands(t *testing.T) {
	cfg := testConfig(t)
	ui := &fakeUI{newPin: "4321"}
	ctx := context.Background()

	app := newTestApp(t, cfg, ui)
	require.NoError(t, app.SetPin(ctx))
	require.NoError(t, app.Close())

	// a new process has no session and must unlock
	locked := &fakeUI{}
	app = newTestApp(t, cfg, locked)

	password := []byte("pw")
	err := app.Export(ctx, &bytes.Buffer{}, password)
	assert.ErrorIs(t, err, tui.ErrUserQuit)
	assert.Equal(t, 1, locked.unlockRuns)
	assert.Equal(t, []byte{0, 0}, password, "password is wiped when unlock fails")

	assert.ErrorIs(t, app.SetAutoLock(ctx, 1), tui.ErrUserQuit)

	_, statErr := os.Stat(cfg.Storage.Records.Path)
	assert.True(t, os.IsNotExist(statErr), "record store is not opened before unlock")
}

func TestApp_UnlockStartsSession(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	app := newTestApp(t, cfg, &fakeUI{newPin: "4321"})
	require.NoError(t, app.SetPin(ctx))
	require.NoError(t, app.Close())

	ui := &fakeUI{pin: "4321"}
	app = newTestApp(t, cfg, ui)
	require.NoError(t, app.SetAutoLock(ctx, 7))
	require.NoError(t, app.SetAutoLock(ctx, 8))

	assert.Equal(t, 1, ui.unlockRuns, "the second command reuses the active session")

	st, err := app.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.PinSet)
	assert.Equal(t, session.ActiveSession, st.Session)
	assert.Equal(t, 8, st.AutoLockMinutes)
}

func TestApp_ClearPin(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()
	ui := &fakeUI{newPin: "123456", pin: "123456"}

	app := newTestApp(t, cfg, ui)
	require.NoError(t, app.SetPin(ctx))
	require.NoError(t, app.ClearPin(ctx))

	st, err := app.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.PinSet)
	assert.Equal(t, session.NoSession, st.Session)
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestApp_ResetForgetsEverything(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	app := newTestApp(t, cfg, &fakeUI{newPin: "2580"})
	require.NoError(t, app.SetAutoLock(ctx, 30))
	require.NoError(t, app.SetPin(ctx))
	require.NoError(t, os.WriteFile(cfg.Storage.Records.Path, []byte("stale"), 0o600))

	require.NoError(t, app.Reset(ctx))
	require.NoError(t, app.Close())

	_, err := os.Stat(cfg.Storage.Records.Path)
	assert.True(t, os.IsNotExist(err))

	app = newTestApp(t, cfg, &fakeUI{})
	st, err := app.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.PinSet)
	assert.Equal(t, 5, st.AutoLockMinutes)
}

// ── Aliases ──────────────────────────────────────────────────────────────────

func TestApp_AliasesNotConfigured(t *testing.T) {
	app := newTestApp(t, testConfig(t), &fakeUI{})

	_, err := app.Aliases(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNotConfigured)
}

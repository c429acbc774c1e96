package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/internal/mock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

type unlockHarness struct {
	model       *unlockModel
	coordinator *mock.MockCoordinator
	cancelled   *bool
}

func newUnlockHarness(t *testing.T, initial auth.State) unlockHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	coordinator := mock.NewMockCoordinator(ctrl)

	states := make(chan auth.State)
	cancelled := false
	coordinator.EXPECT().Watch().Return((<-chan auth.State)(states), func() {
		if !cancelled {
			cancelled = true
			close(states)
		}
	})
	coordinator.EXPECT().State().Return(initial)

	return unlockHarness{
		model:       newUnlockModel(context.Background(), coordinator),
		coordinator: coordinator,
		cancelled:   &cancelled,
	}
}

func pressKey(m *unlockModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.updateKeys(msg)
	return cmd
}

// ── RequiresAuth ─────────────────────────────────────────────────────────────

func TestUnlock_RequiresAuthOffersAvailableMethods(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{PinAvailable: true, Message: "Authenticate to continue."})

	view := h.model.View()
	assert.Contains(t, view, "Authenticate to continue.")
	assert.Contains(t, view, "p: enter PIN")
	assert.NotContains(t, view, "b: biometric")

	// biometric key is ignored when biometric is unavailable
	assert.Nil(t, pressKey(h.model, runes("b")))

	h.coordinator.EXPECT().ShowPinDialog(gomock.Any()).Return(auth.StatePinInProgress{})
	cmd := pressKey(h.model, runes("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, stateMsg{state: auth.StatePinInProgress{}}, cmd())
}

func TestUnlock_BiometricKeyTriggersPrompt(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{BiometricAvailable: true})

	h.coordinator.EXPECT().TriggerBiometric(gomock.Any()).Return(auth.StateBiometricInProgress{})
	cmd := pressKey(h.model, runes("b"))
	require.NotNil(t, cmd)
	assert.Equal(t, stateMsg{state: auth.StateBiometricInProgress{}}, cmd())
}

// ── PinInProgress ────────────────────────────────────────────────────────────

func TestUnlock_SubmitPinAndShowFailure(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{PinAvailable: true})
	h.model.applyState(auth.StatePinInProgress{})

	for _, r := range "1234" {
		pressKey(h.model, runes(string(r)))
	}
	assert.NotContains(t, h.model.View(), "1234", "PIN must be masked")

	h.coordinator.EXPECT().VerifyPin(gomock.Any(), []byte("1234")).
		Return(auth.ResultFailed{Message: "Incorrect PIN, 4 attempts remaining.", AttemptsRemaining: 4})

	cmd := pressKey(h.model, enterKey)
	require.NotNil(t, cmd)
	assert.Empty(t, h.model.pin.Value(), "input is cleared on submit")

	msg := cmd()
	h.model.Update(msg)
	assert.Contains(t, h.model.View(), "Incorrect PIN, 4 attempts remaining.")
}

func TestUnlock_EmptyPinIsNotSubmitted(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{PinAvailable: true})
	h.model.applyState(auth.StatePinInProgress{})

	assert.Nil(t, pressKey(h.model, enterKey))
}

func TestUnlock_EscDismissesPinDialog(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{PinAvailable: true})
	h.model.applyState(auth.StatePinInProgress{})
	pressKey(h.model, runes("12"))

	h.coordinator.EXPECT().DismissPinDialog(gomock.Any()).Return(auth.StateRequiresAuth{PinAvailable: true})

	cmd := pressKey(h.model, escKey)
	require.NotNil(t, cmd)
	assert.Equal(t, stateMsg{state: auth.StateRequiresAuth{PinAvailable: true}}, cmd())
	assert.Empty(t, h.model.pin.Value())
}

func TestUnlock_PinHintIsShown(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{})
	h.model.applyState(auth.StatePinInProgress{Hint: "Too many biometric attempts. Use your PIN."})

	assert.Contains(t, h.model.View(), "Too many biometric attempts. Use your PIN.")
}

// ── LockedOut ────────────────────────────────────────────────────────────────

func TestUnlock_LockedOutCountsDownAndOnlyOffersQuit(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{PinAvailable: true})

	cmd := h.model.applyState(auth.StateLockedOut{RemainingSeconds: 299})
	require.NotNil(t, cmd, "lockout starts the countdown tick")
	assert.True(t, h.model.ticking)
	assert.Contains(t, h.model.View(), "Try again in 4:59")
	assert.NotContains(t, h.model.View(), "enter PIN")

	// a repeated state does not start a second tick
	assert.Nil(t, h.model.applyState(auth.StateLockedOut{RemainingSeconds: 299}))

	for _, k := range []tea.KeyMsg{runes("p"), runes("b"), enterKey, escKey} {
		assert.Nil(t, pressKey(h.model, k))
	}

	h.coordinator.EXPECT().RefreshLockoutTimer(gomock.Any()).Return(auth.StateLockedOut{RemainingSeconds: 298})
	_, cmd = h.model.Update(lockoutTickMsg{})
	require.NotNil(t, cmd)
	assert.False(t, h.model.ticking)
	assert.Equal(t, stateMsg{state: auth.StateLockedOut{RemainingSeconds: 298}}, cmd())

	pressKey(h.model, runes("q"))
	assert.True(t, h.model.quitByUser)
	assert.True(t, *h.cancelled)
}

func TestUnlock_TickAfterLockoutEndedIsIgnored(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{PinAvailable: true})

	_, cmd := h.model.Update(lockoutTickMsg{})
	assert.Nil(t, cmd)
}

func TestUnlock_ResultLockedOutSwitchesScreen(t *testing.T) {
	h := newUnlockHarness(t, auth.StatePinInProgress{})

	cmd := h.model.applyResult(auth.ResultLockedOut{DurationSeconds: 300})
	require.NotNil(t, cmd)
	assert.Equal(t, auth.StateLockedOut{RemainingSeconds: 300}, h.model.state)
	assert.Contains(t, h.model.View(), "5:00")
}

// ── Authenticated / Error ────────────────────────────────────────────────────

func TestUnlock_AuthenticatedQuits(t *testing.T) {
	h := newUnlockHarness(t, auth.StateRequiresAuth{PinAvailable: true})

	cmd := h.model.applyState(auth.StateAuthenticated{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, h.model.authenticated)
	assert.True(t, *h.cancelled)
}

func TestUnlock_ErrorOffersRetry(t *testing.T) {
	h := newUnlockHarness(t, auth.StateError{Message: "Unlock failed."})
	assert.Contains(t, h.model.View(), "Unlock failed.")

	h.coordinator.EXPECT().Activate(gomock.Any()).Return(auth.StateRequiresAuth{PinAvailable: true})
	cmd := pressKey(h.model, runes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, stateMsg{state: auth.StateRequiresAuth{PinAvailable: true}}, cmd())
}

func TestUnlock_WatchDeliversStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	coordinator := mock.NewMockCoordinator(ctrl)
	states := make(chan auth.State, 1)
	coordinator.EXPECT().Watch().Return((<-chan auth.State)(states), func() {})
	coordinator.EXPECT().State().Return(auth.StateRequiresAuth{})

	m := newUnlockModel(context.Background(), coordinator)

	states <- auth.StateBiometricInProgress{}
	assert.Equal(t, watchedStateMsg{state: auth.StateBiometricInProgress{}}, m.cmdWaitForState()())

	close(states)
	assert.Equal(t, watchClosedMsg{}, m.cmdWaitForState()())
}

func TestUnlock_OnlyWatchedStatesRearmReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	coordinator := mock.NewMockCoordinator(ctrl)
	states := make(chan auth.State, 1)
	coordinator.EXPECT().Watch().Return((<-chan auth.State)(states), func() {})
	coordinator.EXPECT().State().Return(auth.StateRequiresAuth{PinAvailable: true})

	m := newUnlockModel(context.Background(), coordinator)

	// results of coordinator calls never start another reader
	for range 3 {
		_, cmd := m.Update(stateMsg{state: auth.StateRequiresAuth{PinAvailable: true}})
		assert.Nil(t, cmd)
	}

	_, cmd := m.Update(watchedStateMsg{state: auth.StateRequiresAuth{PinAvailable: true}})
	require.NotNil(t, cmd)

	states <- auth.StateBiometricInProgress{}
	assert.Equal(t, watchedStateMsg{state: auth.StateBiometricInProgress{}}, cmd())
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "5:00", formatCountdown(300))
	assert.Equal(t, "0:09", formatCountdown(9))
	assert.Equal(t, "0:00", formatCountdown(-3))
}

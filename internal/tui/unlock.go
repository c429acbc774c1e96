// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-persona-keeper/internal/auth"
)

const lockoutTickInterval = time.Second

// unlockModel renders the coordinator state and forwards user intents to it.
// The program ends once the coordinator reports StateAuthenticated.
type unlockModel struct {
	ctx         context.Context
	coordinator auth.Coordinator

	states      <-chan auth.State
	cancelWatch func()

	state    auth.State
	pin      textinput.Model
	feedback string
	ticking  bool

	authenticated bool
	quitByUser    bool
}

func newUnlockModel(ctx context.Context, coordinator auth.Coordinator) *unlockModel {
	pin := textinput.New()
	pin.Placeholder = "PIN"
	pin.CharLimit = 8
	pin.Width = 12
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '•'

	states, cancel := coordinator.Watch()

	return &unlockModel{
		ctx:         ctx,
		coordinator: coordinator,
		states:      states,
		cancelWatch: cancel,
		state:       coordinator.State(),
		pin:         pin,
	}
}

func (m *unlockModel) Init() tea.Cmd {
	return tea.Batch(m.cmdActivate(), m.cmdWaitForState())
}

func (m *unlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		return m, m.applyState(msg.state)
	case watchedStateMsg:
		return m, tea.Batch(m.applyState(msg.state), m.cmdWaitForState())
	case watchClosedMsg:
		return m, nil
	case pinResultMsg:
		return m, m.applyResult(msg.result)
	case lockoutTickMsg:
		m.ticking = false
		if _, ok := m.state.(auth.StateLockedOut); !ok {
			return m, nil
		}
		return m, m.cmdRefreshLockout()
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if _, ok := m.state.(auth.StatePinInProgress); ok {
		var cmd tea.Cmd
		m.pin, cmd = m.pin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *unlockModel) applyState(st auth.State) tea.Cmd {
	prev := m.state
	m.state = st

	switch st := st.(type) {
	case auth.StateAuthenticated:
		m.authenticated = true
		m.stopWatching()
		return tea.Quit
	case auth.StatePinInProgress:
		if _, was := prev.(auth.StatePinInProgress); !was {
			m.pin.Reset()
			return m.pin.Focus()
		}
	case auth.StateLockedOut:
		m.pin.Blur()
		m.pin.Reset()
		if st.RemainingSeconds > 0 && !m.ticking {
			m.ticking = true
			return cmdLockoutTick()
		}
	default:
		m.pin.Blur()
		if _, was := prev.(auth.StatePinInProgress); was {
			m.feedback = ""
		}
	}
	return nil
}

func (m *unlockModel) applyResult(r auth.Result) tea.Cmd {
	switch r := r.(type) {
	case auth.ResultSuccess:
		m.feedback = ""
		return m.applyState(auth.StateAuthenticated{})
	case auth.ResultFailed:
		m.feedback = r.Message
	case auth.ResultLockedOut:
		m.feedback = ""
		return m.applyState(auth.StateLockedOut{RemainingSeconds: r.DurationSeconds})
	case auth.ResultError:
		m.feedback = r.Message
	}
	return nil
}

func (m *unlockModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m.quit()
	}

	switch st := m.state.(type) {
	case auth.StateLockedOut:
		// the lockout screen only offers quit
		if key.Matches(msg, keys.quit) {
			return m.quit()
		}
		return m, nil

	case auth.StatePinInProgress:
		switch {
		case key.Matches(msg, keys.esc):
			m.pin.Reset()
			m.feedback = ""
			return m, m.cmdCoordinator(m.coordinator.DismissPinDialog)
		case key.Matches(msg, keys.enter):
			if m.pin.Value() == "" {
				return m, nil
			}
			pin := []byte(m.pin.Value())
			m.pin.Reset()
			return m, m.cmdVerifyPin(pin)
		}
		var cmd tea.Cmd
		m.pin, cmd = m.pin.Update(msg)
		return m, cmd

	case auth.StateRequiresAuth:
		switch {
		case key.Matches(msg, keys.quit):
			return m.quit()
		case st.PinAvailable && (key.Matches(msg, keys.pin) || key.Matches(msg, keys.enter)):
			return m, m.cmdCoordinator(m.coordinator.ShowPinDialog)
		case st.BiometricAvailable && key.Matches(msg, keys.biometric):
			return m, m.cmdCoordinator(m.coordinator.TriggerBiometric)
		}

	case auth.StateBiometricInProgress:
		switch {
		case key.Matches(msg, keys.quit):
			return m.quit()
		case key.Matches(msg, keys.pin):
			return m, m.cmdCoordinator(m.coordinator.ShowPinDialog)
		}

	case auth.StateError:
		switch {
		case key.Matches(msg, keys.quit):
			return m.quit()
		case key.Matches(msg, keys.retry), key.Matches(msg, keys.enter):
			return m, m.cmdActivate()
		}
	}

	return m, nil
}

func (m *unlockModel) quit() (tea.Model, tea.Cmd) {
	m.quitByUser = true
	m.stopWatching()
	return m, tea.Quit
}

func (m *unlockModel) stopWatching() {
	if m.cancelWatch != nil {
		m.cancelWatch()
		m.cancelWatch = nil
	}
}

func (m *unlockModel) View() string {
	var (
		b       strings.Builder
		hotKeys string
	)

	switch st := m.state.(type) {
	case auth.StateRequiresAuth:
		b.WriteString(valueOrDash(st.Message))
		var opts []string
		if st.PinAvailable {
			opts = append(opts, "p: enter PIN")
		}
		if st.BiometricAvailable {
			opts = append(opts, "b: biometric")
		}
		opts = append(opts, "q: quit")
		hotKeys = strings.Join(opts, " │ ")

	case auth.StateBiometricInProgress:
		b.WriteString("Waiting for biometric confirmation...")
		if st.Hint != "" {
			b.WriteString("\n\n")
			b.WriteString(warnStyle.Render(st.Hint))
		}
		hotKeys = "p: use PIN │ q: quit"

	case auth.StatePinInProgress:
		if st.Hint != "" {
			b.WriteString(warnStyle.Render(st.Hint))
			b.WriteString("\n\n")
		}
		b.WriteString("PIN │ [")
		b.WriteString(m.pin.View())
		b.WriteString("]")
		if m.feedback != "" {
			b.WriteString("\n\n")
			b.WriteString(errorStyle.Render(m.feedback))
		}
		hotKeys = "enter: unlock │ esc: cancel"

	case auth.StateLockedOut:
		b.WriteString(errorStyle.Render("Too many failed attempts."))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("Try again in %s", formatCountdown(st.RemainingSeconds)))
		hotKeys = "q: quit"

	case auth.StateError:
		b.WriteString(errorStyle.Render(valueOrDash(st.Message)))
		hotKeys = "r: retry │ q: quit"

	case auth.StateAuthenticated:
		b.WriteString("Unlocked.")
	}

	return renderPage("UNLOCK", b.String(), hotKeys)
}

func (m *unlockModel) cmdActivate() tea.Cmd {
	return m.cmdCoordinator(m.coordinator.Activate)
}

func (m *unlockModel) cmdRefreshLockout() tea.Cmd {
	return m.cmdCoordinator(m.coordinator.RefreshLockoutTimer)
}

func (m *unlockModel) cmdCoordinator(call func(context.Context) auth.State) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return stateMsg{state: call(ctx)}
	}
}

func (m *unlockModel) cmdVerifyPin(pin []byte) tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator
	return func() tea.Msg {
		return pinResultMsg{result: coordinator.VerifyPin(ctx, pin)}
	}
}

func (m *unlockModel) cmdWaitForState() tea.Cmd {
	states := m.states
	if states == nil {
		return nil
	}
	return func() tea.Msg {
		st, ok := <-states
		if !ok {
			return watchClosedMsg{}
		}
		return watchedStateMsg{state: st}
	}
}

func cmdLockoutTick() tea.Cmd {
	return tea.Tick(lockoutTickInterval, func(time.Time) tea.Msg {
		return lockoutTickMsg{}
	})
}

package tui

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
)

// pinSetupModel asks for a new PIN twice and stores it.
type pinSetupModel struct {
	ctx   context.Context
	creds credential.Store

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	saved      bool
	quitByUser bool
}

func newPinSetupModel(ctx context.Context, creds credential.Store) *pinSetupModel {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 8
		in.Width = 12
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '•'
		return in
	}

	pin := newInput("new PIN")
	pin.Focus()

	return &pinSetupModel{
		ctx:    ctx,
		creds:  creds,
		inputs: []textinput.Model{pin, newInput("repeat PIN")},
	}
}

func (m *pinSetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *pinSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(pinSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.saved = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.forceQuit), key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.switchFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.focus == 0 {
				m.switchFocus()
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *pinSetupModel) submit() tea.Cmd {
	pin := []byte(m.inputs[0].Value())
	confirm := []byte(m.inputs[1].Value())
	defer crypto.Wipe(confirm)

	m.inputs[0].Reset()
	m.inputs[1].Reset()
	if m.focus != 0 {
		m.switchFocus()
	}

	if !bytes.Equal(pin, confirm) {
		crypto.Wipe(pin)
		m.errMsg = humanizeError(ErrPinMismatch)
		return nil
	}
	if err := credential.ValidatePin(pin); err != nil {
		crypto.Wipe(pin)
		m.errMsg = humanizeError(err)
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	creds := m.creds
	return func() tea.Msg {
		return pinSavedMsg{err: creds.SetPin(ctx, pin)}
	}
}

func (m *pinSetupModel) switchFocus() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *pinSetupModel) View() string {
	var b strings.Builder
	b.WriteString("New PIN     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat PIN  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SET PIN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm │ esc: cancel")
}

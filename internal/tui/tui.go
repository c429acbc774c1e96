// Package tui implements the terminal surface: the unlock screen, PIN setup
// and the identity list shown while the app is unlocked.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/service"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
	"github.com/MKhiriev/go-persona-keeper/models"
)

type TUI struct {
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption
	logger    *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &TUI{buildInfo: buildInfo, options: options, logger: logger}
}

// Unlock runs the unlock screen until the coordinator authenticates or the
// user quits, in which case ErrUserQuit is returned.
func (t *TUI) Unlock(ctx context.Context, coordinator auth.Coordinator) error {
	final, err := t.run(newUnlockModel(ctx, coordinator))
	if err != nil {
		return err
	}

	result, ok := final.(*unlockModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	result.stopWatching()
	if !result.authenticated {
		return ErrUserQuit
	}
	return nil
}

// SetupPin asks for a new PIN and stores it in creds.
func (t *TUI) SetupPin(ctx context.Context, creds credential.Store) error {
	final, err := t.run(newPinSetupModel(ctx, creds))
	if err != nil {
		return err
	}

	result, ok := final.(*pinSetupModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if !result.saved {
		return ErrUserQuit
	}
	return nil
}

// Identities runs the unlocked main screen. It reports locked when the
// program ended because the app was locked, either by the user or by
// NotifyLocked.
func (t *TUI) Identities(
	ctx context.Context,
	identities service.IdentityService,
	policy session.Policy,
	coordinator auth.Coordinator,
) (locked bool, err error) {
	final, err := t.run(newIdentitiesModel(ctx, identities, policy, coordinator, t.buildInfo))
	if err != nil {
		return false, err
	}

	result, ok := final.(*identitiesModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.locked, nil
}

// NotifyLocked ends the running program as locked. It is safe to call from
// any goroutine and is a no-op when no program is running.
func (t *TUI) NotifyLocked() {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(lockedMsg{})
	}
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model, t.options...)

	t.mu.Lock()
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	final, err := p.Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.run").Msg("terminal program failed")
	}
	return final, err
}

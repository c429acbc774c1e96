package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-persona-keeper/internal/auth"
	"github.com/MKhiriev/go-persona-keeper/internal/service"
	"github.com/MKhiriev/go-persona-keeper/internal/session"
	"github.com/MKhiriev/go-persona-keeper/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenConfirmDelete
	screenBuildInfo
)

// formField binds one text input to an identity field.
type formField struct {
	label string
	get   func(models.Identity) string
	set   func(*models.Identity, string)
}

var identityFormFields = []formField{
	{"First name", func(i models.Identity) string { return i.FirstName }, func(i *models.Identity, v string) { i.FirstName = v }},
	{"Last name", func(i models.Identity) string { return i.LastName }, func(i *models.Identity, v string) { i.LastName = v }},
	{"Email", func(i models.Identity) string { return i.Email }, func(i *models.Identity, v string) { i.Email = v }},
	{"Phone", func(i models.Identity) string { return i.Phone }, func(i *models.Identity, v string) { i.Phone = v }},
	{"Date of birth", func(i models.Identity) string { return i.DateOfBirth }, func(i *models.Identity, v string) { i.DateOfBirth = v }},
	{"Street", func(i models.Identity) string { return i.Street }, func(i *models.Identity, v string) { i.Street = v }},
	{"City", func(i models.Identity) string { return i.City }, func(i *models.Identity, v string) { i.City = v }},
	{"Region", func(i models.Identity) string { return i.Region }, func(i *models.Identity, v string) { i.Region = v }},
	{"Postal code", func(i models.Identity) string { return i.PostalCode }, func(i *models.Identity, v string) { i.PostalCode = v }},
	{"Country", func(i models.Identity) string { return i.Country }, func(i *models.Identity, v string) { i.Country = v }},
	{"Notes", func(i models.Identity) string { return i.Notes }, func(i *models.Identity, v string) { i.Notes = v }},
}

// identitiesModel is the unlocked main screen: a list of identities with
// detail, create/edit form and delete confirmation.
type identitiesModel struct {
	ctx         context.Context
	identities  service.IdentityService
	policy      session.Policy
	coordinator auth.Coordinator
	buildInfo   models.AppBuildInfo
	copyText    func(string) error

	screen  screen
	items   []models.Identity
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	inputs  []textinput.Model
	focus   int
	editing models.Identity
	saving  bool

	locked bool
}

func newIdentitiesModel(
	ctx context.Context,
	identities service.IdentityService,
	policy session.Policy,
	coordinator auth.Coordinator,
	buildInfo models.AppBuildInfo,
) *identitiesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &identitiesModel{
		ctx:         ctx,
		identities:  identities,
		policy:      policy,
		coordinator: coordinator,
		buildInfo:   buildInfo,
		copyText:    clipboard.WriteAll,
		loading:     true,
		spinner:     s,
	}
}

func (m *identitiesModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadItems(), m.spinner.Tick)
}

func (m *identitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lockedMsg:
		m.locked = true
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.loading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		m.clampIndex()
		return m, nil
	case identitySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.screen = screenList
		m.status = fmt.Sprintf("Saved %q.", msg.identity.FullName())
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case identityDeletedMsg:
		m.screen = screenList
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Identity deleted."
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadItems()
	case lockSkippedMsg:
		m.status = "No PIN is set, nothing to lock."
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Email copied to clipboard."
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		model, cmd := m.updateKeys(msg)
		return model, tea.Batch(cmd, m.cmdTouch())
	}

	if m.screen == screenForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *identitiesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			if item, ok := m.current(); ok {
				return m, m.cmdDelete(item.ID)
			}
			m.screen = screenList
		case key.Matches(msg, keys.no):
			m.screen = screenDetail
		}
		return m, nil
	case screenBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.screen = screenList
		}
		return m, nil
	case screenDetail:
		return m.updateDetail(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.lock):
		return m, m.cmdLock()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.screen = screenDetail
			m.status = ""
		}
	case key.Matches(msg, keys.newItem):
		return m, m.openForm(models.Identity{})
	case key.Matches(msg, keys.version):
		m.screen = screenBuildInfo
	}
	return m, nil
}

func (m *identitiesModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		m.status = ""
	case key.Matches(msg, keys.edit):
		return m, m.openForm(item)
	case key.Matches(msg, keys.delete):
		m.screen = screenConfirmDelete
	case key.Matches(msg, keys.copy):
		if item.Email == "" {
			m.errMsg = "No email to copy."
			return m, nil
		}
		return m, m.cmdCopy(item.Email)
	case key.Matches(msg, keys.lock):
		return m, m.cmdLock()
	}
	return m, nil
}

func (m *identitiesModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		if m.editing.ID != "" {
			m.screen = screenDetail
		}
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		return m, m.moveFocus(1)
	case key.Matches(msg, keys.backtab):
		return m, m.moveFocus(-1)
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		if m.focus < len(m.inputs)-1 {
			return m, m.moveFocus(1)
		}
		identity := m.editing
		for i, f := range identityFormFields {
			f.set(&identity, m.inputs[i].Value())
		}
		m.saving = true
		m.errMsg = ""
		return m, tea.Batch(m.cmdSave(identity), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *identitiesModel) openForm(identity models.Identity) tea.Cmd {
	m.editing = identity
	m.inputs = make([]textinput.Model, len(identityFormFields))
	for i, f := range identityFormFields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(f.label)
		in.CharLimit = 512
		in.Width = 40
		in.SetValue(f.get(identity))
		m.inputs[i] = in
	}
	m.inputs[4].Placeholder = "YYYY-MM-DD"
	m.focus = 0
	m.screen = screenForm
	m.status = ""
	m.errMsg = ""
	return m.inputs[0].Focus()
}

func (m *identitiesModel) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *identitiesModel) current() (models.Identity, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Identity{}, false
	}
	return m.items[m.idx], true
}

func (m *identitiesModel) clampIndex() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *identitiesModel) View() string {
	switch m.screen {
	case screenBuildInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case screenForm:
		return m.viewForm()
	case screenDetail:
		return m.viewDetail("")
	case screenConfirmDelete:
		item, _ := m.current()
		return m.viewDetail(confirmModel{message: item.FullName()}.View())
	}
	return m.viewList()
}

func (m *identitiesModel) viewList() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	case len(m.items) == 0:
		b.WriteString("No identities yet.")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s %s\n", cursor, fitText(item.FullName(), 30), fitText(item.Email, 40)))
		}
	}

	m.writeStatus(&b)
	return renderPage("IDENTITIES", strings.TrimRight(b.String(), "\n"),
		"n: new │ enter: open │ L: lock │ v: about │ q: quit")
}

func (m *identitiesModel) viewDetail(overlay string) string {
	item, _ := m.current()

	var b strings.Builder
	rows := []struct{ label, value string }{
		{"Name", item.FullName()},
		{"Email", item.Email},
		{"Phone", item.Phone},
		{"Born", item.DateOfBirth},
		{"Street", item.Street},
		{"City", strings.TrimSpace(item.PostalCode + " " + item.City)},
		{"Region", item.Region},
		{"Country", item.Country},
		{"Notes", item.Notes},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-8s │ %s\n", r.label, valueOrDash(r.value)))
	}

	if overlay != "" {
		b.WriteString("\n")
		b.WriteString(overlay)
		b.WriteString("\n")
	}
	m.writeStatus(&b)

	return renderPage("IDENTITY", strings.TrimRight(b.String(), "\n"),
		"e: edit │ d: delete │ c: copy email │ L: lock │ esc: back")
}

func (m *identitiesModel) viewForm() string {
	var b strings.Builder
	for i, f := range identityFormFields {
		b.WriteString(fmt.Sprintf("%-13s │ [", f.label))
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	if m.saving {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Saving...\n")
	}
	m.writeStatus(&b)

	title := "NEW IDENTITY"
	if m.editing.ID != "" {
		title = "EDIT IDENTITY"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: next / save │ esc: cancel")
}

func (m *identitiesModel) writeStatus(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorOverlayModel{message: m.errMsg}.View())
		b.WriteString("\n")
	}
}

func (m *identitiesModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	identities := m.identities
	return func() tea.Msg {
		items, err := identities.List(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m *identitiesModel) cmdSave(identity models.Identity) tea.Cmd {
	ctx := m.ctx
	identities := m.identities
	return func() tea.Msg {
		var (
			saved models.Identity
			err   error
		)
		if identity.ID == "" {
			saved, err = identities.Create(ctx, identity)
		} else {
			saved, err = identities.Update(ctx, identity)
		}
		return identitySavedMsg{identity: saved, err: err}
	}
}

func (m *identitiesModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	identities := m.identities
	return func() tea.Msg {
		return identityDeletedMsg{err: identities.Delete(ctx, id)}
	}
}

func (m *identitiesModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func (m *identitiesModel) cmdLock() tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator
	return func() tea.Msg {
		if _, ok := coordinator.Lock(ctx).(auth.StateAuthenticated); ok {
			return lockSkippedMsg{}
		}
		return lockedMsg{}
	}
}

// cmdTouch records user activity so the session stays alive while in use.
func (m *identitiesModel) cmdTouch() tea.Cmd {
	ctx := m.ctx
	policy := m.policy
	return func() tea.Msg {
		_ = policy.Touch(ctx)
		return nil
	}
}

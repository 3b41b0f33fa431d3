// Package confirm asks a yes/no question.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
	"tableflip.dev/daybook/pkg/tui/ui"
)

// Model is a yes/no dialog about Subject.
type Model struct {
	id      events.ComponentID
	subject string
	title   string
	body    string
	theme   theme.Theme
	width   int
}

// New returns a dialog; subject is echoed back on the ConfirmMsg.
func New(id events.ComponentID, subject, title, body string, th theme.Theme) *Model {
	return &Model{id: id, subject: subject, title: title, body: body, theme: th}
}

// Subject is what the question is about.
func (m *Model) Subject() string { return m.subject }

// Init implements ui.Modal.
func (m *Model) Init() tea.Cmd { return nil }

// Update answers on y/n; esc answers no.
func (m *Model) Update(msg tea.Msg) (ui.Modal, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		return m, m.answer(true)
	case "n", "N", "esc":
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	id, subject := m.id, m.subject
	return func() tea.Msg {
		return events.ConfirmMsg{Component: id, Subject: subject, Confirmed: yes}
	}
}

// View renders the question.
func (m *Model) View() (string, *tea.Cursor) {
	mt := m.theme.Modal
	body := lipgloss.JoinVertical(lipgloss.Left, mt.Title.Render(m.title), "", mt.Body.Render(m.body))
	return mt.Frame.Width(m.width).Render(body), nil
}

// SetSize sizes the dialog relative to the screen.
func (m *Model) SetSize(width, _ int) {
	m.width = min(max(30, width-8), 56)
}

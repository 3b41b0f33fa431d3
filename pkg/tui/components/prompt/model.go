// Package prompt asks for one line of text, such as a file path.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
	"tableflip.dev/daybook/pkg/tui/ui"
)

// Model is a titled single line prompt.
type Model struct {
	id    events.ComponentID
	title string
	input textinput.Model
	theme theme.Theme
	err   string

	width  int
	height int
}

// New returns a prompt pre-filled with value.
func New(id events.ComponentID, title, placeholder, value string, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 1024
	ti.Prompt = "> "
	ti.VirtualCursor = true
	ti.SetValue(value)
	ti.CursorEnd()
	return &Model{id: id, title: title, input: ti, theme: th}
}

// ID identifies the prompt on the PromptMsg it emits.
func (m *Model) ID() events.ComponentID { return m.id }

// SetError shows a message under the input, for example when the host could
// not use the submitted value.
func (m *Model) SetError(msg string) { m.err = msg }

// Value returns the current text.
func (m *Model) Value() string { return m.input.Value() }

// Init focuses the input.
func (m *Model) Init() tea.Cmd { return m.input.Focus() }

// Update submits on enter and closes on esc.
func (m *Model) Update(msg tea.Msg) (ui.Modal, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.err = "a value is required"
				return m, nil
			}
			m.err = ""
			id := m.id
			return m, func() tea.Msg { return events.PromptMsg{Component: id, Value: value} }
		case "esc":
			m.input.Blur()
			return m, events.CloseCmd(m.id)
		default:
			m.err = ""
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt in the modal frame.
func (m *Model) View() (string, *tea.Cursor) {
	mt := m.theme.Modal
	parts := []string{mt.Title.Render(m.title), m.input.View()}
	if m.err != "" {
		parts = append(parts, mt.Error.Render(m.err))
	}
	return mt.Frame.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...)), nil
}

// SetSize sizes the prompt relative to the screen.
func (m *Model) SetSize(width, height int) {
	m.width = min(max(30, width-8), 72)
	m.height = height
	m.input.SetWidth(max(10, m.width-10))
}

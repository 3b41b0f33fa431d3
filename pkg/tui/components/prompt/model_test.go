package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
)

func TestPromptSubmitsTrimmedValue(t *testing.T) {
	m := New("import", "Import entries", "path", "  backup.json ", theme.For(true))
	m.SetSize(80, 24)
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(events.PromptMsg)
	require.True(t, ok)
	assert.Equal(t, events.ComponentID("import"), msg.Component)
	assert.Equal(t, "backup.json", msg.Value)
}

func TestPromptRequiresValue(t *testing.T) {
	m := New("export", "Export journal", "file", "", theme.For(true))
	m.SetSize(80, 24)
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	view, _ := m.View()
	assert.Contains(t, ansi.Strip(view), "a value is required")

	m.Update(tea.KeyPressMsg{Text: "x", Code: 'x'})
	assert.Equal(t, "x", m.Value())
	view, _ = m.View()
	assert.NotContains(t, ansi.Strip(view), "a value is required")

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(events.CloseMsg)
	assert.True(t, ok)
}

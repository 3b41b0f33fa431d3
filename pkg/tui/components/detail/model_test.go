package detail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
)

func sample() []entry.Entry {
	return []entry.Entry{
		{ID: "a", Date: "01/07/2025", Rating: 3, Categories: []string{"walk"}, Description: "Morning walk by the river."},
		{ID: "b", Date: "04/07/2025", Rating: 4.5, Categories: []string{"food", "friends"}, ImgURL: "https://example.com/b.jpg", Description: "Barbecue in the park with everyone from the street."},
		{ID: "c", Date: "09/07/2025", Rating: 5, Categories: []string{"music"}, Description: "Concert."},
	}
}

func open(t *testing.T, id string, editable bool) *Model {
	t.Helper()
	m := New(sample(), id, Options{Theme: theme.For(true), Editable: editable})
	m.SetSize(80, 30)
	return m
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	return tea.KeyPressMsg{Text: s, Code: []rune(s)[0]}
}

func TestDetailShowsPositionAndHints(t *testing.T) {
	m := open(t, "b", true)
	view, _ := m.View()
	plain := ansi.Strip(view)

	assert.Contains(t, plain, "2 / 3")
	assert.Contains(t, plain, "Friday 4 July 2025")
	assert.Contains(t, plain, "★★★★★")
	assert.Contains(t, plain, "food · friends")
	assert.Contains(t, plain, "← previous")
	assert.Contains(t, plain, "next →")
	assert.Contains(t, plain, "e edit")
}

func TestDetailMovesWithinBounds(t *testing.T) {
	m := open(t, "b", false)

	m.Update(key("left"))
	assert.Equal(t, 0, m.Index())
	m.Update(key("left"))
	assert.Equal(t, 0, m.Index(), "previous on the first entry is a no-op")

	view, _ := m.View()
	assert.NotContains(t, ansi.Strip(view), "← previous")

	m.Update(key("right"))
	m.Update(key("right"))
	m.Update(key("right"))
	assert.Equal(t, 2, m.Index())
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "c", cur.ID)
}

func TestDetailEscapeCloses(t *testing.T) {
	m := open(t, "a", false)
	_, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	_, ok := cmd().(events.CloseMsg)
	assert.True(t, ok)
}

func TestDetailEditRequiresCapability(t *testing.T) {
	ro := open(t, "a", false)
	_, cmd := ro.Update(key("e"))
	assert.Nil(t, cmd)
	_, cmd = ro.Update(key("d"))
	assert.Nil(t, cmd)

	rw := open(t, "a", true)
	_, cmd = rw.Update(key("e"))
	require.NotNil(t, cmd)
	edit, ok := cmd().(events.EditRequestMsg)
	require.True(t, ok)
	assert.Equal(t, "a", edit.Entry.ID)

	_, cmd = rw.Update(key("d"))
	require.NotNil(t, cmd)
	del, ok := cmd().(events.DeleteRequestMsg)
	require.True(t, ok)
	assert.Equal(t, "a", del.Entry.ID)
}

func TestDetailSwipe(t *testing.T) {
	m := open(t, "b", false)

	m.Update(tea.MouseClickMsg{X: 40, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 35})
	m.Update(tea.MouseReleaseMsg{X: 30})
	assert.Equal(t, 2, m.Index(), "swipe left shows the next entry")

	m.Update(tea.MouseClickMsg{X: 30, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: 33})
	assert.Equal(t, 2, m.Index(), "short drags are ignored")

	m.Update(tea.MouseClickMsg{X: 10, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: 30})
	assert.Equal(t, 1, m.Index(), "swipe right shows the previous entry")
}

func TestDetailSetEntriesKeepsCurrent(t *testing.T) {
	m := open(t, "c", false)
	m.SetEntries(sample()[1:], "c")
	assert.Equal(t, 1, m.Index())

	m.SetEntries(sample()[:1], "c")
	assert.Equal(t, 0, m.Index())

	m.SetEntries(nil, "c")
	_, ok := m.Current()
	assert.False(t, ok)
	view, _ := m.View()
	assert.Empty(t, view)
}

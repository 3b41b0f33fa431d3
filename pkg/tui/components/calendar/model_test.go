package calendar

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/scroll"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
)

var july = calendar.MonthKey{Year: 2025, Month: time.July}

func newSurface(t *testing.T) *Model {
	t.Helper()
	m, err := New(Options{
		Today: calendar.NewDate(2025, time.July, 15),
		Theme: theme.For(true),
	})
	require.NoError(t, err)
	m.SetSize(80, chromeRows+45)
	return m
}

func finish(m *Model) {
	for m.anim.Running() {
		m.Update(frameMsg{id: m.id, tok: m.animTok})
	}
}

func press(m *Model, s string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch s {
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		r := []rune(s)[0]
		msg = tea.KeyPressMsg{Text: s, Code: r}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestSurfaceStartsOnPivot(t *testing.T) {
	m := newSurface(t)

	assert.Equal(t, calendar.DefaultBuffer*ItemHeight, m.Offset())
	assert.Equal(t, july, m.Focus())
	assert.Equal(t, scroll.Window{Start: 10, End: 20}, m.Window())
	assert.Equal(t, calendar.NewDate(2025, time.July, 15), m.Cursor())

	view := m.View()
	assert.Contains(t, view, "July 2025")
	assert.Len(t, strings.Split(view, "\n"), chromeRows+45)
}

func TestSurfaceStepsMonths(t *testing.T) {
	m := newSurface(t)

	require.NotNil(t, press(m, "down"))
	finish(m)
	assert.Equal(t, calendar.MonthKey{Year: 2025, Month: time.August}, m.Focus())
	assert.Equal(t, 13*ItemHeight, m.Offset())
	assert.Equal(t, calendar.NewDate(2025, time.August, 15), m.Cursor())

	// Presses during a scroll accumulate from the scroll's target.
	press(m, "down")
	press(m, "down")
	press(m, "down")
	finish(m)
	assert.Equal(t, calendar.MonthKey{Year: 2025, Month: time.November}, m.Focus())
}

func TestSurfaceNavigationOutsideRing(t *testing.T) {
	m := newSurface(t)

	for i := 0; i < calendar.DefaultBuffer; i++ {
		press(m, "up")
	}
	finish(m)
	require.Equal(t, calendar.MonthKey{Year: 2024, Month: time.July}, m.Focus())
	offset := m.Offset()

	cmd := press(m, "up")
	require.NotNil(t, cmd)
	miss, ok := cmd().(events.NavigateMissMsg)
	require.True(t, ok)
	assert.Equal(t, calendar.MonthKey{Year: 2024, Month: time.June}, miss.Month)
	assert.Equal(t, offset, m.Offset())
	assert.Equal(t, -1, m.Ring().IndexOf(miss.Month))
}

func TestSurfaceReachesLastMonth(t *testing.T) {
	m := newSurface(t)

	for i := 0; i < calendar.DefaultBuffer; i++ {
		require.NotNil(t, press(m, "down"))
		finish(m)
	}
	last := calendar.MonthKey{Year: 2026, Month: time.July}
	require.Equal(t, last, m.Focus())
	assert.Equal(t, 2*calendar.DefaultBuffer*ItemHeight, m.Offset())
	assert.Equal(t, calendar.NewDate(2026, time.July, 15), m.Cursor())
	assert.Contains(t, m.View(), "July 2026")

	cmd := press(m, "down")
	require.NotNil(t, cmd)
	miss, ok := cmd().(events.NavigateMissMsg)
	require.True(t, ok)
	assert.Equal(t, calendar.MonthKey{Year: 2026, Month: time.August}, miss.Month)
	assert.Equal(t, last, m.Focus())
	assert.Equal(t, calendar.NewDate(2026, time.July, 15), m.Cursor())
}

func TestSurfaceActivatesCursorDay(t *testing.T) {
	m := newSurface(t)
	beach := entry.Entry{ID: "a", Date: "15/07/2025", Description: "Beach day", Categories: []string{"travel"}, Rating: 4}
	m.SetEntries([]entry.Entry{beach})

	msg := press(m, "enter")()
	click, ok := msg.(events.EntryClickMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "a", click.Entry.ID)

	press(m, "l")
	day, ok := press(m, "enter")().(events.DayClickMsg)
	require.True(t, ok)
	assert.Equal(t, calendar.NewDate(2025, time.July, 16), day.Date)

	add, ok := press(m, "n")().(events.DayClickMsg)
	require.True(t, ok)
	assert.Equal(t, day.Date, add.Date)
}

func TestSurfaceSkipsUnboundEntries(t *testing.T) {
	m := newSurface(t)
	m.SetEntries([]entry.Entry{
		{ID: "bad", Date: "31/02/2025", Description: "nope"},
		{ID: "ok", Date: "01/07/2025", Description: "fine"},
	})

	idx := m.Ring().IndexOf(july)
	assert.Len(t, m.Ring().Months[idx].Entries(), 1)
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestSurfaceAnnouncesOncePerTransition(t *testing.T) {
	m := newSurface(t)
	require.NotNil(t, m.Init())
	require.True(t, m.Announcing())

	m.Update(announceDoneMsg{id: m.id, tok: 0})
	assert.True(t, m.Announcing(), "stale expiry ended the announcement")
	m.Update(announceDoneMsg{id: m.id, tok: 1})
	assert.False(t, m.Announcing())

	// Scrolling inside July never re-announces.
	for i := 0; i < 5; i++ {
		assert.Nil(t, press(m, "j"))
	}
	assert.False(t, m.Announcing())

	press(m, "down")
	finish(m)
	assert.True(t, m.Announcing())
}

func TestSurfaceCloseStopsTimers(t *testing.T) {
	m := newSurface(t)
	press(m, "down")
	require.True(t, m.anim.Running())

	m.Close()
	offset := m.Offset()
	m.Update(frameMsg{id: m.id, tok: m.animTok})
	assert.Equal(t, offset, m.Offset())
	assert.False(t, m.Announcing())
	assert.Nil(t, press(m, "down"))
}

func TestSurfaceSearchDebounce(t *testing.T) {
	m := newSurface(t)
	press(m, "/")
	require.True(t, m.Searching())

	require.NotNil(t, press(m, "b"))
	stale := m.searchSeq
	press(m, "e")

	_, cmd := m.Update(searchSettledMsg{id: m.id, seq: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.Query())

	_, cmd = m.Update(searchSettledMsg{id: m.id, seq: m.searchSeq})
	require.NotNil(t, cmd)
	search, ok := cmd().(events.SearchMsg)
	require.True(t, ok)
	assert.Equal(t, "be", search.Query)

	cmd = press(m, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, "", cmd().(events.SearchMsg).Query)
	assert.False(t, m.Searching())
}

func TestSurfaceMouse(t *testing.T) {
	m := newSurface(t)
	start := m.Offset()

	m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	assert.Equal(t, start+wheelStep, m.Offset())
	m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	assert.Equal(t, start, m.Offset())

	// July 2025 starts on a Tuesday, the third column of a Sunday-first week.
	col := cellWidth(80)
	_, cmd := m.Update(tea.MouseClickMsg{X: 2*col + 1, Y: chromeRows + titleRows, Button: tea.MouseLeft})
	require.NotNil(t, cmd)
	day, ok := cmd().(events.DayClickMsg)
	require.True(t, ok)
	assert.Equal(t, calendar.NewDate(2025, time.July, 1), day.Date)
	assert.Equal(t, day.Date, m.Cursor())

	// Padding days from June are not clickable.
	_, cmd = m.Update(tea.MouseClickMsg{X: 1, Y: chromeRows + titleRows, Button: tea.MouseLeft})
	assert.Nil(t, cmd)
}

func TestSurfaceFollowsToday(t *testing.T) {
	m := newSurface(t)
	assert.Nil(t, m.SetToday(calendar.NewDate(2025, time.July, 16)))

	m.SetToday(calendar.NewDate(2025, time.August, 1))
	assert.Equal(t, calendar.MonthKey{Year: 2025, Month: time.August}, m.Ring().Pivot)
	assert.Equal(t, july, m.Focus())
	assert.Equal(t, (calendar.DefaultBuffer-1)*ItemHeight, m.Offset())

	m.GoToday()
	finish(m)
	assert.Equal(t, calendar.MonthKey{Year: 2025, Month: time.August}, m.Focus())
	assert.Equal(t, calendar.NewDate(2025, time.August, 1), m.Cursor())
}

func TestRenderMonth(t *testing.T) {
	grid := calendar.BuildMonthGrid(2025, time.February, []entry.Entry{
		{ID: "x", Date: "14/02/2025", Description: "Out with friends", Categories: []string{"Dinner"}, Rating: 5},
	}, calendar.GridOptions{})
	out := RenderMonth(grid, calendar.Date{}, theme.For(true), nil, 70)
	assert.Contains(t, out, "February 2025")
	assert.Contains(t, out, "Dinner")
}

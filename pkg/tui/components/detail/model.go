// Package detail shows one entry at a time in a modal, with previous/next
// movement through the current projection.
package detail

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/gesture"
	"tableflip.dev/daybook/pkg/tui/locale"
	"tableflip.dev/daybook/pkg/tui/theme"
	"tableflip.dev/daybook/pkg/tui/ui"
)

const maxWidth = 64

// Options configure the detail modal.
type Options struct {
	ID       events.ComponentID
	Theme    theme.Theme
	Locale   *locale.Translator
	Editable bool
}

// Model is the entry detail modal.
type Model struct {
	id       events.ComponentID
	theme    theme.Theme
	tr       *locale.Translator
	editable bool

	entries []entry.Entry
	index   int
	swipe   *gesture.Swipe

	width  int
	height int
}

// New opens the modal on the entry with id inside entries. Unknown ids open
// on the first entry.
func New(entries []entry.Entry, id string, opts Options) *Model {
	if opts.ID == "" {
		opts.ID = "detail"
	}
	if opts.Locale == nil {
		opts.Locale = locale.New("en")
	}
	m := &Model{
		id:       opts.ID,
		theme:    opts.Theme,
		tr:       opts.Locale,
		editable: opts.Editable,
		swipe:    gesture.NewSwipe(gesture.DefaultDragSlop, gesture.DefaultThreshold),
	}
	m.SetEntries(entries, id)
	return m
}

// SetEntries swaps the navigable entries, staying on id when it survives.
func (m *Model) SetEntries(entries []entry.Entry, id string) {
	m.entries = entries
	m.index = 0
	for i, e := range entries {
		if e.ID == id {
			m.index = i
			break
		}
	}
}

// Current returns the entry on display.
func (m *Model) Current() (entry.Entry, bool) {
	if m.index < 0 || m.index >= len(m.entries) {
		return entry.Entry{}, false
	}
	return m.entries[m.index], true
}

// Index is the zero based position of the current entry.
func (m *Model) Index() int { return m.index }

// Len is the number of navigable entries.
func (m *Model) Len() int { return len(m.entries) }

// HasPrev reports whether Prev would move.
func (m *Model) HasPrev() bool { return m.index > 0 }

// HasNext reports whether Next would move.
func (m *Model) HasNext() bool { return m.index < len(m.entries)-1 }

// Prev moves to the previous entry; it is a no-op on the first one.
func (m *Model) Prev() bool {
	if !m.HasPrev() {
		return false
	}
	m.index--
	return true
}

// Next moves to the next entry; it is a no-op on the last one.
func (m *Model) Next() bool {
	if !m.HasNext() {
		return false
	}
	m.index++
	return true
}

// Init implements ui.Modal.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize records the screen size the modal is centred in.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles movement keys and swipes.
func (m *Model) Update(msg tea.Msg) (ui.Modal, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseClickMsg:
		if msg.Mouse().Button == tea.MouseLeft {
			m.swipe.Press(msg.Mouse().X)
		}
	case tea.MouseMotionMsg:
		m.swipe.Move(msg.Mouse().X)
	case tea.MouseReleaseMsg:
		switch m.swipe.Release(msg.Mouse().X) {
		case gesture.Left:
			m.Next()
		case gesture.Right:
			m.Prev()
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.Prev()
	case "right", "l":
		m.Next()
	case "esc", "q":
		return events.CloseCmd(m.id)
	case "e", "enter":
		if e, ok := m.Current(); ok && m.editable {
			id := m.id
			return func() tea.Msg { return events.EditRequestMsg{Component: id, Entry: e} }
		}
	case "d", "delete":
		if e, ok := m.Current(); ok && m.editable {
			id := m.id
			return func() tea.Msg { return events.DeleteRequestMsg{Component: id, Entry: e} }
		}
	}
	return nil
}

// View renders the current entry inside the modal frame.
func (m *Model) View() (string, *tea.Cursor) {
	e, ok := m.Current()
	if !ok {
		return "", nil
	}
	mt := m.theme.Modal
	width := min(maxWidth, max(24, m.width-4))
	inner := max(10, width-mt.Frame.GetHorizontalFrameSize())

	title := e.Date
	if d, ok := e.CalendarDate(); ok {
		title = m.tr.LongDate(d)
	}
	position := m.tr.T("detail.position", map[string]any{"Index": m.index + 1, "Total": len(m.entries)})
	gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(position))

	lines := []string{
		mt.Title.Render(title) + strings.Repeat(" ", gap) + mt.Muted.Render(position),
		"",
		m.theme.Rating(e.Rating, entry.MaxRating).Render(entry.Stars(e.Rating)) + " " + mt.Muted.Render(entry.FormatRating(e.Rating)),
	}
	if len(e.Categories) > 0 {
		lines = append(lines, mt.Focus.Render(strings.Join(e.Categories, " · ")))
	}
	if e.ImgURL != "" {
		lines = append(lines, mt.Muted.Render(truncate.StringWithTail(e.ImgURL, uint(inner), "…")))
	}
	lines = append(lines, "", mt.Body.Render(wordwrap.String(e.Description, inner)), "")

	var nav []string
	if m.HasPrev() {
		nav = append(nav, m.tr.T("detail.prev", nil))
	}
	if m.HasNext() {
		nav = append(nav, m.tr.T("detail.next", nil))
	}
	if len(nav) > 0 {
		lines = append(lines, mt.Muted.Render(strings.Join(nav, "   ")))
	}
	hints := "detail.hintsReadOnly"
	if m.editable {
		hints = "detail.hints"
	}
	lines = append(lines, mt.Muted.Render(m.tr.T(hints, nil)))

	return mt.Frame.Width(width).Render(strings.Join(lines, "\n")), nil
}

// Date returns the day of the current entry, if it parses.
func (m *Model) Date() (calendar.Date, bool) {
	e, ok := m.Current()
	if !ok {
		return calendar.Date{}, false
	}
	return e.CalendarDate()
}

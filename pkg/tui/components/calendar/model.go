package calendar

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/scroll"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/locale"
	"tableflip.dev/daybook/pkg/tui/theme"
)

const (
	chromeRows  = 2
	wheelStep   = 3
	searchDelay = 150 * time.Millisecond
)

// Options configure a calendar surface.
type Options struct {
	ID        events.ComponentID
	Buffer    int
	LookAhead int
	MinWindow int
	WeekStart time.Weekday
	// Pivot fixes the centre of the ring. When zero the ring is centred on
	// Today and follows it across midnight.
	Pivot    calendar.Date
	Today    calendar.Date
	Announce time.Duration
	Theme    theme.Theme
	Locale   *locale.Translator
	Logger   *slog.Logger
}

type announceDoneMsg struct {
	id  events.ComponentID
	tok scroll.Token
}

type frameMsg struct {
	id  events.ComponentID
	tok scroll.Token
}

type searchSettledMsg struct {
	id  events.ComponentID
	seq int
}

// Model is the calendar surface. It owns the scroll engine, the header
// announcer and the smooth-scroll animation; entries are handed to it by the
// host and clicks are reported back as events.
type Model struct {
	id     events.ComponentID
	opts   Options
	theme  theme.Theme
	tr     *locale.Translator
	logger *slog.Logger

	engine    *scroll.Engine
	announcer *scroll.Announcer
	anim      *scroll.Animation
	animTok   scroll.Token
	navTarget calendar.MonthKey

	ring    calendar.Ring[entry.Entry]
	entries []entry.Entry
	pivot   calendar.MonthKey
	today   calendar.Date
	cursor  calendar.Date

	search    textinput.Model
	searching bool
	searchSeq int
	query     string

	width  int
	height int
	closed bool
}

// New builds a surface scrolled to the pivot month.
func New(opts Options) (*Model, error) {
	if opts.ID == "" {
		opts.ID = "calendar"
	}
	if opts.Buffer <= 0 {
		opts.Buffer = calendar.DefaultBuffer
	}
	if opts.LookAhead <= 0 {
		opts.LookAhead = scroll.DefaultLookAhead
	}
	if opts.MinWindow <= 0 {
		opts.MinWindow = scroll.DefaultMinWindow
	}
	if opts.Today.IsZero() {
		opts.Today = calendar.DateOf(time.Now())
	}
	if opts.Locale == nil {
		opts.Locale = locale.New("en")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine, err := scroll.NewEngine(scroll.Config{
		ItemHeight: ItemHeight,
		LookAhead:  opts.LookAhead,
		MinWindow:  opts.MinWindow,
	})
	if err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = opts.Locale.T("search.placeholder", nil)
	ti.CharLimit = 128
	ti.VirtualCursor = true

	m := &Model{
		id:        opts.ID,
		opts:      opts,
		theme:     opts.Theme,
		tr:        opts.Locale,
		logger:    logger.With("component", string(opts.ID)),
		engine:    engine,
		announcer: scroll.NewAnnouncer(opts.Announce),
		anim:      scroll.NewAnimation(0, 0),
		today:     opts.Today,
		search:    ti,
	}
	m.pivot = m.today.MonthKey()
	if !opts.Pivot.IsZero() {
		m.pivot = opts.Pivot.MonthKey()
	}
	m.rebuild()
	m.engine.SetRing(m.ring)
	m.engine.ScrollTo(m.engine.Navigator().Home(m.ring.PivotIndex()))
	m.cursor = m.pivot.First()
	if m.pivot.Contains(m.today) {
		m.cursor = m.today
	}
	return m, nil
}

// ID returns the component identifier used on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Init announces the first focused month.
func (m *Model) Init() tea.Cmd {
	st := m.engine.State()
	st.Changed = true
	return m.announce(st)
}

// SetSize updates the surface dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(max(10, width-4))
	m.engine.Resize(max(0, height-chromeRows))
}

// SetEntries replaces the projection rendered in the grid and rebuilds the
// ring around the same pivot.
func (m *Model) SetEntries(entries []entry.Entry) {
	m.entries = entries
	m.rebuild()
	m.engine.SetRing(m.ring)
}

// SetToday moves the today marker. A surface without a fixed pivot is
// re-centred when the month changes.
func (m *Model) SetToday(d calendar.Date) tea.Cmd {
	if d == m.today {
		return nil
	}
	m.today = d
	if !m.opts.Pivot.IsZero() || d.MonthKey() == m.pivot {
		return nil
	}
	return m.repivot(d.MonthKey())
}

// Close stops the announcer and any smooth scroll. Messages arriving later
// are ignored.
func (m *Model) Close() {
	m.closed = true
	m.announcer.Stop()
	m.anim.Cancel()
}

// Focus returns the month the header names.
func (m *Model) Focus() calendar.MonthKey { return m.engine.State().Focus }

// Window returns the mounted ring range.
func (m *Model) Window() scroll.Window { return m.engine.State().Window }

// Offset returns the scroll offset in rows.
func (m *Model) Offset() int { return m.engine.Offset() }

// Ring exposes the month ring currently rendered.
func (m *Model) Ring() calendar.Ring[entry.Entry] { return m.ring }

// Cursor returns the highlighted day.
func (m *Model) Cursor() calendar.Date { return m.cursor }

// Today returns the day marked as today.
func (m *Model) Today() calendar.Date { return m.today }

// Announcing reports whether the header is highlighting a month change.
func (m *Model) Announcing() bool { return m.announcer.Active() }

// Searching reports whether the search bar has keyboard focus.
func (m *Model) Searching() bool { return m.searching }

// Query returns the last settled search query.
func (m *Model) Query() string { return m.query }

// Update handles keys, mouse and the surface's own timer messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case announceDoneMsg:
		if msg.id == m.id {
			m.announcer.Expire(msg.tok)
		}
		return m, nil
	case frameMsg:
		if msg.id != m.id || m.closed {
			return m, nil
		}
		return m, m.frame(msg.tok)
	case searchSettledMsg:
		if msg.id != m.id || msg.seq != m.searchSeq {
			return m, nil
		}
		return m, m.settleSearch()
	case tea.KeyPressMsg:
		if m.closed {
			return m, nil
		}
		if m.searching {
			return m, m.handleSearchKey(msg)
		}
		return m, m.handleKey(msg)
	case tea.MouseWheelMsg:
		if m.closed {
			return m, nil
		}
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			return m, m.scrollBy(-wheelStep)
		case tea.MouseWheelDown:
			return m, m.scrollBy(wheelStep)
		}
	case tea.MouseClickMsg:
		if m.closed {
			return m, nil
		}
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			return m, m.click(mouse.X, mouse.Y)
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	page := max(1, m.engine.Viewport())
	switch msg.String() {
	case "up":
		return m.step(-1)
	case "down":
		return m.step(1)
	case "k":
		return m.scrollBy(-1)
	case "j":
		return m.scrollBy(1)
	case "pgup":
		return m.scrollBy(-page)
	case "pgdown", "space":
		return m.scrollBy(page)
	case "ctrl+u":
		return m.scrollBy(-max(1, page/2))
	case "ctrl+d":
		return m.scrollBy(max(1, page/2))
	case "h", "left":
		return m.moveCursor(-1)
	case "l", "right":
		return m.moveCursor(1)
	case "[":
		return m.moveCursor(-7)
	case "]":
		return m.moveCursor(7)
	case "enter":
		return m.activate(m.cursor)
	case "n":
		return events.DayClickCmd(m.id, m.cursor)
	case "/":
		m.searching = true
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return tea.Batch(m.search.Focus(), textinput.Blink)
	case "t":
		return m.GoToday()
	case "g", "home":
		cmd, ok := m.engine.Navigator().NavigateTo(m.pivot, m.ring)
		if !ok {
			return nil
		}
		m.cursor = m.pivot.First()
		return m.navigate(cmd)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.searchSeq++
		return m.settleSearch()
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.searchSeq++
		return m.settleSearch()
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return cmd
	}
	m.searchSeq++
	seq, id := m.searchSeq, m.id
	return tea.Batch(cmd, tea.Tick(searchDelay, func(time.Time) tea.Msg {
		return searchSettledMsg{id: id, seq: seq}
	}))
}

func (m *Model) settleSearch() tea.Cmd {
	q := strings.TrimSpace(m.search.Value())
	if q == m.query {
		return nil
	}
	m.query = q
	m.logger.Debug("search settled", "query", q)
	return events.SearchCmd(m.id, q)
}

// GoToday re-centres the ring on today's month when needed and scrolls to it.
func (m *Model) GoToday() tea.Cmd {
	var cmds []tea.Cmd
	target := m.today.MonthKey()
	if m.ring.IndexOf(target) < 0 || m.pivot != target {
		cmds = append(cmds, m.repivot(target))
	}
	m.cursor = m.today
	if cmd, ok := m.engine.Navigator().NavigateTo(target, m.ring); ok {
		cmds = append(cmds, m.navigate(cmd))
	}
	return tea.Batch(cmds...)
}

// NavigateTo scrolls smoothly to month k. Months outside the ring report a
// NavigateMissMsg and leave the surface untouched.
func (m *Model) NavigateTo(k calendar.MonthKey) tea.Cmd {
	cmd, ok := m.engine.Navigator().NavigateTo(k, m.ring)
	if !ok {
		return m.miss(k)
	}
	m.cursor = clampDay(k, m.cursor.Day)
	return m.navigate(cmd)
}

func (m *Model) step(delta int) tea.Cmd {
	base := m.Focus()
	if m.anim.Running() {
		base = m.navTarget
	}
	cmd, ok := m.engine.Navigator().Step(base, delta, m.ring)
	if !ok {
		return m.miss(base.Add(delta))
	}
	m.cursor = clampDay(cmd.Target, m.cursor.Day)
	return m.navigate(cmd)
}

func (m *Model) miss(k calendar.MonthKey) tea.Cmd {
	m.logger.Debug("navigation outside ring", "month", k.String())
	id := m.id
	return func() tea.Msg {
		return events.NavigateMissMsg{Component: id, Month: k}
	}
}

func (m *Model) navigate(cmd scroll.Command) tea.Cmd {
	m.navTarget = cmd.Target
	target := m.engine.Clamp(cmd.Offset)
	if !cmd.Smooth {
		m.anim.Cancel()
		return m.announce(m.engine.ScrollTo(target))
	}
	m.animTok = m.anim.Start(m.engine.Offset(), target)
	if !m.anim.Running() {
		return nil
	}
	return m.frameTick(m.animTok)
}

func (m *Model) frameTick(tok scroll.Token) tea.Cmd {
	id := m.id
	return tea.Tick(m.anim.Interval(), func(time.Time) tea.Msg {
		return frameMsg{id: id, tok: tok}
	})
}

func (m *Model) frame(tok scroll.Token) tea.Cmd {
	off, more, ok := m.anim.Frame(tok)
	if !ok {
		return nil
	}
	cmd := m.announce(m.engine.ScrollTo(off))
	if more {
		return tea.Batch(cmd, m.frameTick(tok))
	}
	return cmd
}

func (m *Model) scrollBy(delta int) tea.Cmd {
	m.anim.Cancel()
	st := m.engine.ScrollBy(delta)
	if st.Changed && !st.Focus.Contains(m.cursor) {
		m.cursor = st.Focus.First()
		if st.Focus.Contains(m.today) {
			m.cursor = m.today
		}
	}
	return m.announce(st)
}

func (m *Model) moveCursor(days int) tea.Cmd {
	next := m.cursor.AddDays(days)
	if next.MonthKey() == m.Focus() && !m.anim.Running() {
		m.cursor = next
		return nil
	}
	cmd, ok := m.engine.Navigator().NavigateTo(next.MonthKey(), m.ring)
	if !ok {
		return m.miss(next.MonthKey())
	}
	m.cursor = next
	return m.navigate(cmd)
}

// announce triggers the header animation when st moved to a new month.
func (m *Model) announce(st scroll.State) tea.Cmd {
	if !st.Changed {
		return nil
	}
	tok, ok := m.announcer.Trigger()
	if !ok {
		return nil
	}
	id, focus := m.id, st.Focus
	return tea.Batch(
		tea.Tick(m.announcer.Delay(), func(time.Time) tea.Msg {
			return announceDoneMsg{id: id, tok: tok}
		}),
		func() tea.Msg {
			return events.MonthChangeMsg{Component: id, Month: focus}
		},
	)
}

func (m *Model) activate(d calendar.Date) tea.Cmd {
	idx := m.ring.IndexOf(d.MonthKey())
	if idx < 0 {
		return nil
	}
	day, ok := m.ring.Months[idx].Day(d)
	if ok && day.InFocusedMonth && len(day.Entries) > 0 {
		return events.EntryClickCmd(m.id, day.Entries[0])
	}
	return events.DayClickCmd(m.id, d)
}

// click maps a mouse position on the surface to a day cell.
func (m *Model) click(x, y int) tea.Cmd {
	d, ok := m.dayAt(x, y)
	if !ok {
		if y == 1 && !m.searching {
			m.searching = true
			return tea.Batch(m.search.Focus(), textinput.Blink)
		}
		return nil
	}
	m.cursor = d
	return m.activate(d)
}

func (m *Model) dayAt(x, y int) (calendar.Date, bool) {
	row := y - chromeRows
	if row < 0 || row >= m.engine.Viewport() || x < 0 {
		return calendar.Date{}, false
	}
	virtual := m.engine.Offset() + row
	idx := virtual / ItemHeight
	if idx >= m.ring.Len() || !m.Window().Contains(idx) {
		return calendar.Date{}, false
	}
	line := virtual%ItemHeight - titleRows
	if line < 0 || line >= weekRows*rowsPerWeek {
		return calendar.Date{}, false
	}
	month := m.ring.Months[idx]
	week, col := line/rowsPerWeek, x/cellWidth(m.width)
	if week >= month.Weeks() || col >= 7 {
		return calendar.Date{}, false
	}
	day := month.Week(week)[col]
	if !day.InFocusedMonth {
		return calendar.Date{}, false
	}
	return day.Date, true
}

func (m *Model) rebuild() {
	m.ring = calendar.BuildRing(m.pivot, m.opts.Buffer, m.entries, calendar.GridOptions{
		WeekStart: m.opts.WeekStart,
		Unbound: func(e any) {
			if v, ok := e.(entry.Entry); ok {
				m.logger.Warn("entry date does not bind to a day", "id", v.ID, "date", v.Date)
			}
		},
	})
}

// repivot rebuilds the ring around k, keeping the focused month on screen
// when the new ring still holds it.
func (m *Model) repivot(k calendar.MonthKey) tea.Cmd {
	before := m.engine.State()
	within := before.Offset % ItemHeight
	m.anim.Cancel()
	m.pivot = k
	m.rebuild()
	m.engine.SetRing(m.ring)

	offset := m.engine.Navigator().Home(m.ring.PivotIndex())
	if idx := m.ring.IndexOf(before.Focus); idx >= 0 {
		offset = idx*ItemHeight + within
	}
	st := m.engine.ScrollTo(offset)
	st.Changed = st.Focus != before.Focus
	m.logger.Info("ring re-centred", "pivot", k.String(), "focus", st.Focus.String())
	return m.announce(st)
}

// View renders the header, the search bar and the visible rows.
func (m *Model) View() string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.headerLine(), m.searchLine())
	lines = append(lines, m.body()...)
	return strings.Join(lines, "\n")
}

func (m *Model) headerLine() string {
	style := m.theme.Calendar.Header
	if m.announcer.Active() {
		style = m.theme.Calendar.HeaderActive
	}
	title := style.Render(m.tr.MonthTitle(m.Focus()))
	if m.query == "" {
		return title
	}
	return title + " " + m.theme.Calendar.Search.Render(m.tr.N("search.matches", len(m.entries)))
}

func (m *Model) searchLine() string {
	if m.searching {
		return m.search.View()
	}
	if m.query != "" {
		return m.theme.Calendar.Search.Render("/ " + m.query)
	}
	return m.theme.Calendar.Search.Render("/ " + m.search.Placeholder)
}

// body renders rows [offset, offset+viewport) of the virtual surface. Only
// months inside the mounted window are rendered; anything else is blank.
func (m *Model) body() []string {
	st := m.engine.State()
	viewport := m.engine.Viewport()
	r := renderer{
		theme:  m.theme,
		tr:     m.tr,
		header: m.tr.WeekHeader(m.opts.WeekStart),
		cell:   cellWidth(m.width),
		today:  m.today,
		cursor: m.cursor,
	}

	blocks := make(map[int][]string, st.Window.Len())
	for i, month := range m.ring.Slice(st.Window.Start, st.Window.End) {
		blocks[st.Window.Start+i] = r.month(month)
	}

	lines := make([]string, 0, viewport)
	for row := st.Offset; row < st.Offset+viewport; row++ {
		block, ok := blocks[row/ItemHeight]
		if !ok {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, block[row%ItemHeight])
	}
	return lines
}

func clampDay(k calendar.MonthKey, day int) calendar.Date {
	if day < 1 {
		day = 1
	}
	return calendar.NewDate(k.Year, k.Month, min(day, calendar.DaysIn(k.Year, k.Month)))
}

// Package teaui hosts the Bubble Tea program for the daybook calendar.
package teaui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/store"
	calview "tableflip.dev/daybook/pkg/tui/components/calendar"
	"tableflip.dev/daybook/pkg/tui/components/confirm"
	"tableflip.dev/daybook/pkg/tui/components/detail"
	"tableflip.dev/daybook/pkg/tui/components/form"
	"tableflip.dev/daybook/pkg/tui/components/help"
	"tableflip.dev/daybook/pkg/tui/components/prompt"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/locale"
	"tableflip.dev/daybook/pkg/tui/theme"
	"tableflip.dev/daybook/pkg/tui/ui"
	"tableflip.dev/daybook/pkg/tui/ui/overlay"
)

type mode int

const (
	modeNormal mode = iota
	modeDetail
	modeForm
	modeConfirm
	modeImport
	modeExport
	modeHelp
)

func (m mode) String() string {
	switch m {
	case modeDetail:
		return "detail"
	case modeForm:
		return "form"
	case modeConfirm:
		return "confirm"
	case modeImport:
		return "import"
	case modeExport:
		return "export"
	case modeHelp:
		return "help"
	default:
		return "normal"
	}
}

const (
	surfaceID events.ComponentID = "calendar"
	detailID  events.ComponentID = "detail"
	formID    events.ComponentID = "form"
	confirmID events.ComponentID = "confirm"
	importID  events.ComponentID = "import"
	exportID  events.ComponentID = "export"

	footerRows = 1
)

// Capabilities are the optional feature sets a host grants the calendar.
type Capabilities struct {
	// Edit enables adding, editing and deleting entries.
	Edit bool
	// Transfer enables importing and exporting the journal.
	Transfer bool
}

// Full grants every capability.
var Full = Capabilities{Edit: true, Transfer: true}

// Options configure the program.
type Options struct {
	Capabilities Capabilities
	Buffer       int
	LookAhead    int
	MinWindow    int
	WeekStart    time.Weekday
	// Pivot fixes the centre month; zero follows today.
	Pivot    calendar.Date
	Announce time.Duration
	Locale   string
	// ExportDir is where exports are suggested. Defaults to the working
	// directory.
	ExportDir string
	// LoadErr is the error returned when the journal was loaded, shown once
	// in the status line.
	LoadErr error
	Theme   *theme.Theme
	Now     func() time.Time
	Logger  *slog.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	svc    *app.Service
	caps   Capabilities
	opts   Options
	theme  theme.Theme
	tr     *locale.Translator
	logger *slog.Logger

	mode    mode
	surface *calview.Model
	detail  *detail.Model
	modal   ui.Modal
	// detailMonth scopes the detail modal's prev/next to one month.
	detailMonth calendar.MonthKey
	// back is the mode to return to when the top modal closes.
	back mode

	query     string
	status    string
	statusErr bool

	width  int
	height int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds the root model over an already loaded service.
func New(ctx context.Context, svc *app.Service, opts Options) (*Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	tr := locale.New(opts.Locale)

	surface, err := calview.New(calview.Options{
		ID:        surfaceID,
		Buffer:    opts.Buffer,
		LookAhead: opts.LookAhead,
		MinWindow: opts.MinWindow,
		WeekStart: opts.WeekStart,
		Pivot:     opts.Pivot,
		Today:     calendar.DateOf(opts.Now()),
		Announce:  opts.Announce,
		Theme:     th,
		Locale:    tr,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("teaui: %w", err)
	}

	m := &Model{
		ctx:     ctx,
		svc:     svc,
		caps:    opts.Capabilities,
		opts:    opts,
		theme:   th,
		tr:      tr,
		logger:  logger.With("component", "teaui"),
		surface: surface,
	}
	if opts.LoadErr != nil {
		m.setError(tr.T("status.fallback", nil))
	}
	m.refresh()
	return m, nil
}

// Init starts the surface timers and the store watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.surface.Init(), startWatchCmd(m.ctx, m.svc))
}

// Surface exposes the calendar surface.
func (m *Model) Surface() *calview.Model { return m.surface }

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

// Update routes messages by mode.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if d, ok := msg.(interface{ Describe() string }); ok {
		m.logger.Debug("event", "type", fmt.Sprintf("%T", msg), "detail", d.Describe())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applySizes()
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	case tea.MouseMsg:
		cmds = append(cmds, m.routeMouse(msg))
	case clockMsg:
		cmds = append(cmds, m.surface.SetToday(calendar.DateOf(msg.now)))
	case events.SearchMsg:
		m.query = msg.Query
		m.refresh()
	case events.MonthChangeMsg:
		m.logger.Debug("focused month", "month", msg.Month.String())
	case events.NavigateMissMsg:
		m.setStatus(m.tr.T("status.outOfRange", map[string]any{"Month": m.tr.MonthTitle(msg.Month)}))
	case events.EntryClickMsg:
		cmds = append(cmds, m.openDetail(msg.Entry.ID))
	case events.DayClickMsg:
		cmds = append(cmds, m.openAdd(msg.Date))
	case events.EditRequestMsg:
		cmds = append(cmds, m.openEdit(msg.Entry))
	case events.DeleteRequestMsg:
		m.openModal(modeConfirm, confirm.New(confirmID, msg.Entry.ID,
			m.tr.T("confirm.title", nil), m.tr.T("confirm.body", nil), m.theme))
	case events.ConfirmMsg:
		m.closeModal()
		if msg.Confirmed {
			m.applyDelete(msg.Subject)
		}
	case events.SubmitMsg:
		m.applySubmit(msg)
	case events.PromptMsg:
		m.applyPrompt(msg)
	case events.CloseMsg:
		if msg.Component == detailID {
			m.closeDetail()
		} else {
			m.closeModal()
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Warn("watch unavailable", "err", msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		cmds = append(cmds, reloadCmd(m.ctx, m.svc, msg.event), m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
	case reloadedMsg:
		m.handleReload(msg)
	default:
		// Timer messages belong to the surface or the open modal; both ignore
		// what is not theirs.
		_, cmd := m.surface.Update(msg)
		cmds = append(cmds, cmd)
		if m.modal != nil {
			var mcmd tea.Cmd
			m.modal, mcmd = m.modal.Update(msg)
			cmds = append(cmds, mcmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "ctrl+c" {
		*cmds = append(*cmds, m.quit())
		return true
	}
	switch m.mode {
	case modeHelp:
		return m.handleHelpKey(msg, cmds)
	case modeDetail:
		next, cmd := m.detail.Update(msg)
		m.detail = next.(*detail.Model)
		*cmds = append(*cmds, cmd)
		return true
	case modeForm, modeConfirm, modeImport, modeExport:
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		*cmds = append(*cmds, cmd)
		return true
	default:
		return m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if !m.surface.Searching() {
		switch msg.String() {
		case "q":
			*cmds = append(*cmds, m.quit())
			return true
		case "?":
			m.openModal(modeHelp, help.New(m.width-8, m.height-4, m.theme.Dark()))
			return true
		case "i":
			if !m.caps.Transfer {
				m.setStatus(m.tr.T("status.readOnly", nil))
				return true
			}
			p := prompt.New(importID, m.tr.T("import.title", nil), m.tr.T("import.prompt", nil), "", m.theme)
			*cmds = append(*cmds, m.openModal(modeImport, p))
			return true
		case "x":
			if !m.caps.Transfer {
				m.setStatus(m.tr.T("status.readOnly", nil))
				return true
			}
			path := filepath.Join(m.exportDir(), app.ExportFileName(m.opts.Now()))
			p := prompt.New(exportID, m.tr.T("export.title", nil), m.tr.T("export.prompt", nil), path, m.theme)
			*cmds = append(*cmds, m.openModal(modeExport, p))
			return true
		case "t":
			m.setStatus(m.tr.T("status.today", map[string]any{"Date": m.tr.LongDate(m.surface.Today())}))
		}
	}
	_, cmd := m.surface.Update(msg)
	*cmds = append(*cmds, cmd)
	return true
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q", "esc", "?":
		m.closeModal()
		return true
	}
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	*cmds = append(*cmds, cmd)
	return true
}

func (m *Model) routeMouse(msg tea.MouseMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeNormal:
		_, cmd = m.surface.Update(msg)
	case modeDetail:
		var next ui.Modal
		next, cmd = m.detail.Update(msg)
		m.detail = next.(*detail.Model)
	case modeHelp:
		m.modal, cmd = m.modal.Update(msg)
	}
	return cmd
}

func (m *Model) quit() tea.Cmd {
	m.surface.Close()
	m.stopWatch()
	return tea.Quit
}

// projection is the ordered, filtered journal the grid and the detail modal
// navigate.
func (m *Model) projection() []entry.Entry {
	return app.Ordered(m.svc.Projection(m.query))
}

// refresh pushes the current projection into the surface and the detail
// modal.
func (m *Model) refresh() {
	entries := m.projection()
	m.surface.SetEntries(entries)
	if m.detail == nil {
		return
	}
	current, _ := m.detail.Current()
	if k, ok := monthOf(entries, current.ID); ok {
		m.detailMonth = k
	}
	m.detail.SetEntries(app.InMonth(entries, m.detailMonth), current.ID)
	if m.detail.Len() == 0 {
		m.closeDetail()
	}
}

// monthOf finds the month of the entry with id in entries.
func monthOf(entries []entry.Entry, id string) (calendar.MonthKey, bool) {
	for _, e := range entries {
		if e.ID != id {
			continue
		}
		d, ok := e.CalendarDate()
		return d.MonthKey(), ok
	}
	return calendar.MonthKey{}, false
}

func (m *Model) openDetail(id string) tea.Cmd {
	entries := m.projection()
	k, ok := monthOf(entries, id)
	if !ok {
		return nil
	}
	m.detailMonth = k
	m.detail = detail.New(app.InMonth(entries, k), id, detail.Options{
		ID:       detailID,
		Theme:    m.theme,
		Locale:   m.tr,
		Editable: m.caps.Edit,
	})
	m.detail.SetSize(m.width, m.height)
	m.mode = modeDetail
	return m.detail.Init()
}

func (m *Model) closeDetail() {
	m.detail = nil
	if m.mode == modeDetail {
		m.mode = modeNormal
	}
	if m.back == modeDetail {
		m.back = modeNormal
	}
}

func (m *Model) openAdd(d calendar.Date) tea.Cmd {
	if !m.caps.Edit {
		m.setStatus(m.tr.T("status.readOnly", nil))
		return nil
	}
	return m.openModal(modeForm, m.newForm("", entry.NewDraft(d)))
}

func (m *Model) openEdit(e entry.Entry) tea.Cmd {
	if !m.caps.Edit {
		return nil
	}
	return m.openModal(modeForm, m.newForm(e.ID, e.Draft()))
}

func (m *Model) newForm(id string, d entry.Draft) *form.Model {
	return form.New(id, d, form.Options{
		ID:         formID,
		Theme:      m.theme,
		Locale:     m.tr,
		Categories: m.svc.Categories(),
	})
}

func (m *Model) openModal(md mode, modal ui.Modal) tea.Cmd {
	m.back = modeNormal
	if m.mode == modeDetail {
		m.back = modeDetail
	}
	m.modal = modal
	m.mode = md
	m.applySizes()
	return m.modal.Init()
}

func (m *Model) closeModal() {
	m.modal = nil
	m.mode = m.back
	if m.mode == modeDetail && m.detail == nil {
		m.mode = modeNormal
	}
	m.back = modeNormal
}

func (m *Model) applySizes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.surface.SetSize(m.width, m.height-footerRows)
	if m.detail != nil {
		m.detail.SetSize(m.width, m.height)
	}
	if m.modal != nil {
		if m.mode == modeHelp {
			m.modal.SetSize(m.width-8, m.height-4)
		} else {
			m.modal.SetSize(m.width, m.height)
		}
	}
}

func (m *Model) exportDir() string {
	if m.opts.ExportDir != "" {
		return m.opts.ExportDir
	}
	return "."
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) reportErr(err error) {
	m.logger.Error("operation failed", "err", err)
	m.setError(m.tr.T("status.error", map[string]any{"Err": err.Error()}))
}

// View renders the calendar, the footer and the open modal on top.
func (m *Model) View() string {
	base := m.surface.View() + "\n" + m.footer()
	if m.width <= 0 || m.height <= 0 {
		return base
	}

	var fg string
	switch {
	case m.modal != nil:
		fg, _ = m.modal.View()
	case m.detail != nil:
		fg, _ = m.detail.View()
	}
	if fg == "" {
		return base
	}
	if m.modal != nil && m.detail != nil {
		under, _ := m.detail.View()
		base = overlay.Compose(base, m.width, m.height, under, overlay.Centered)
	}
	return overlay.Compose(base, m.width, m.height, fg, overlay.Centered)
}

func (m *Model) footer() string {
	if m.status != "" {
		if m.statusErr {
			return m.theme.Footer.Error.Render(m.status)
		}
		return m.theme.Footer.Status.Render(m.status)
	}
	return m.theme.Footer.Help.Render(m.tr.T("footer.help", nil))
}

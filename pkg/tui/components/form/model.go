// Package form edits one entry draft.
package form

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/locale"
	"tableflip.dev/daybook/pkg/tui/theme"
	"tableflip.dev/daybook/pkg/tui/ui"
)

const width = 60

// Options configure the form.
type Options struct {
	ID     events.ComponentID
	Theme  theme.Theme
	Locale *locale.Translator
	// Categories are offered as completions for the categories field.
	Categories []string
}

type field struct {
	key   entry.Field
	label string
	input textinput.Model
}

// Model is the add/edit entry form.
type Model struct {
	id         events.ComponentID
	entryID    string
	theme      theme.Theme
	tr         *locale.Translator
	categories []string

	fields     []field
	focus      int
	errors     entry.FieldErrors
	suggestion string

	width  int
	height int
}

// New opens the form on draft d. entryID is empty for a new entry.
func New(entryID string, d entry.Draft, opts Options) *Model {
	if opts.ID == "" {
		opts.ID = "form"
	}
	if opts.Locale == nil {
		opts.Locale = locale.New("en")
	}
	m := &Model{
		id:         opts.ID,
		entryID:    entryID,
		theme:      opts.Theme,
		tr:         opts.Locale,
		categories: opts.Categories,
	}
	m.fields = []field{
		m.newField(entry.FieldDate, "form.date", d.Date, 10),
		m.newField(entry.FieldRating, "form.rating", entry.FormatRating(d.Rating), 4),
		m.newField(entry.FieldCategories, "form.categories", strings.Join(d.Categories, ", "), 256),
		m.newField(entry.FieldImage, "form.image", d.ImgURL, 2048),
		m.newField(entry.FieldDescription, "form.description", d.Description, 2000),
	}
	m.fields[0].input.Focus()
	return m
}

func (m *Model) newField(key entry.Field, label, value string, limit int) field {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = limit
	ti.VirtualCursor = true
	ti.SetWidth(width - 8)
	ti.SetValue(value)
	return field{key: key, label: m.tr.T(label, nil), input: ti}
}

// Editing reports whether the form edits an existing entry.
func (m *Model) Editing() bool { return m.entryID != "" }

// Focused returns the field with keyboard focus.
func (m *Model) Focused() entry.Field { return m.fields[m.focus].key }

// Errors returns the validation errors of the last submit attempt.
func (m *Model) Errors() entry.FieldErrors { return m.errors }

// Suggestion returns the category the tab key would complete.
func (m *Model) Suggestion() string { return m.suggestion }

// SetValue replaces the text of one field.
func (m *Model) SetValue(key entry.Field, value string) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].input.SetValue(value)
			m.fields[i].input.CursorEnd()
		}
	}
	m.suggest()
}

// SetErrors shows errors reported by the host, such as a failed save.
func (m *Model) SetErrors(err error) {
	var fe entry.FieldErrors
	if errors.As(err, &fe) {
		m.errors = fe
	}
}

// Draft reads the current field values. A rating that is not a number is
// reported as out of range by validation.
func (m *Model) Draft() entry.Draft {
	d := entry.Draft{}
	for _, f := range m.fields {
		v := f.input.Value()
		switch f.key {
		case entry.FieldDate:
			d.Date = v
		case entry.FieldRating:
			r, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				r = -1
			}
			d.Rating = r
		case entry.FieldCategories:
			d.Categories = entry.SplitCategories(v)
		case entry.FieldImage:
			d.ImgURL = v
		case entry.FieldDescription:
			d.Description = v
		}
	}
	return d.Normalize()
}

// Init implements ui.Modal.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// SetSize records the screen size the form is centred in.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update handles field navigation, completion and submission.
func (m *Model) Update(msg tea.Msg) (ui.Modal, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		return m, events.CloseCmd(m.id)
	case "ctrl+s":
		return m, m.submit()
	case "tab":
		if m.Focused() == entry.FieldCategories && m.suggestion != "" {
			m.complete()
			return m, nil
		}
		return m, m.move(1)
	case "shift+tab", "up":
		return m, m.move(-1)
	case "down":
		return m, m.move(1)
	case "enter":
		if m.focus == len(m.fields)-1 {
			return m, m.submit()
		}
		return m, m.move(1)
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(key)
	m.suggest()
	return m, cmd
}

func (m *Model) move(delta int) tea.Cmd {
	return m.focusField((m.focus + delta + len(m.fields)) % len(m.fields))
}

func (m *Model) focusField(i int) tea.Cmd {
	m.fields[m.focus].input.Blur()
	m.focus = i
	m.suggest()
	return m.fields[m.focus].input.Focus()
}

func (m *Model) submit() tea.Cmd {
	d := m.Draft()
	if err := d.Validate(); err != nil {
		m.SetErrors(err)
		for i, f := range m.fields {
			if _, bad := m.errors[f.key]; bad {
				return m.focusField(i)
			}
		}
		return nil
	}
	m.errors = nil
	id, entryID := m.id, m.entryID
	return func() tea.Msg {
		return events.SubmitMsg{Component: id, ID: entryID, Draft: d}
	}
}

// suggest finds the best known category for the word being typed.
func (m *Model) suggest() {
	m.suggestion = ""
	if m.Focused() != entry.FieldCategories {
		return
	}
	value := m.fields[m.focus].input.Value()
	_, token := splitLast(value)
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}

	chosen := map[string]bool{}
	for _, c := range entry.SplitCategories(value) {
		chosen[strings.ToLower(c)] = true
	}
	var candidates []string
	for _, c := range m.categories {
		if !chosen[strings.ToLower(c)] || strings.EqualFold(c, token) {
			candidates = append(candidates, c)
		}
	}
	matches := fuzzy.Find(token, candidates)
	if len(matches) == 0 || strings.EqualFold(matches[0].Str, token) {
		return
	}
	m.suggestion = matches[0].Str
}

func (m *Model) complete() {
	input := &m.fields[m.focus].input
	prefix, _ := splitLast(input.Value())
	if prefix != "" {
		prefix += " "
	}
	input.SetValue(prefix + m.suggestion)
	input.CursorEnd()
	m.suggestion = ""
}

// splitLast splits a comma separated list before its last item, keeping the
// comma in the prefix.
func splitLast(s string) (string, string) {
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return "", s
	}
	return s[:i+1], s[i+1:]
}

// View renders the form inside the modal frame.
func (m *Model) View() (string, *tea.Cursor) {
	mt := m.theme.Modal
	title := "form.titleAdd"
	if m.Editing() {
		title = "form.titleEdit"
	}

	lines := []string{mt.Title.Render(m.tr.T(title, nil)), ""}
	for i, f := range m.fields {
		label := mt.Muted.Render(f.label)
		if i == m.focus {
			label = mt.Focus.Render(f.label)
		}
		lines = append(lines, label, f.input.View())
		if f.key == entry.FieldCategories && m.suggestion != "" {
			lines = append(lines, mt.Muted.Render(m.tr.T("form.suggest", map[string]any{"Suggestion": m.suggestion})))
		}
		if msg, bad := m.errors[f.key]; bad {
			lines = append(lines, mt.Error.Render(msg))
		}
	}
	lines = append(lines, "", mt.Muted.Render(m.tr.T("form.hints", nil)))
	return mt.Frame.Width(min(width, max(30, m.width-4))).Render(strings.Join(lines, "\n")), nil
}

// Package calendar renders the infinitely scrolling month column: a header
// naming the focused month, a search bar, and the mounted window of month
// grids.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/tui/locale"
	"tableflip.dev/daybook/pkg/tui/theme"
)

const (
	titleRows   = 2
	weekRows    = 6
	rowsPerWeek = 2

	// ItemHeight is the number of terminal rows one month occupies. Months
	// with fewer than six weeks are padded so every month is equally tall.
	ItemHeight = titleRows + weekRows*rowsPerWeek + 1

	minCellWidth = 5
	maxCellWidth = 22
)

type renderer struct {
	theme  theme.Theme
	tr     *locale.Translator
	header []string
	cell   int
	today  calendar.Date
	cursor calendar.Date
}

func cellWidth(width int) int {
	return min(max(width/7, minCellWidth), maxCellWidth)
}

// month renders exactly ItemHeight lines.
func (r renderer) month(m calendar.Month[entry.Entry]) []string {
	lines := make([]string, 0, ItemHeight)
	lines = append(lines, r.theme.Calendar.MonthTitle.Render(r.tr.MonthTitle(m.MonthKey)))

	labels := make([]string, len(r.header))
	for i, l := range r.header {
		labels[i] = r.theme.Calendar.Weekday.Render(runewidth.FillRight(l, r.cell-1))
	}
	lines = append(lines, strings.Join(labels, " "))

	for w := 0; w < weekRows; w++ {
		if w >= m.Weeks() {
			lines = append(lines, "", "")
			continue
		}
		var top, bottom []string
		for _, d := range m.Week(w) {
			t, b := r.day(d)
			top = append(top, t)
			bottom = append(bottom, b)
		}
		lines = append(lines, strings.Join(top, " "), strings.Join(bottom, " "))
	}
	return append(lines, "")
}

func (r renderer) day(d calendar.Day[entry.Entry]) (string, string) {
	width := r.cell - 1
	if !d.InFocusedMonth {
		blank := strings.Repeat(" ", width)
		return r.theme.Calendar.Padding.Render(runewidth.FillRight(fmt.Sprintf("%2d", d.Date.Day), width)), blank
	}

	text := fmt.Sprintf("%2d", d.Date.Day)
	if len(d.Entries) > 0 {
		text += glyph.Marked
	}
	style := r.theme.Calendar.Day
	if d.Date == r.today {
		style = style.Inherit(r.theme.Calendar.Today)
	}
	if d.Date == r.cursor {
		style = r.theme.Calendar.Cursor.Inherit(style)
	}
	top := style.Render(runewidth.FillRight(text, width))

	if len(d.Entries) == 0 {
		return top, strings.Repeat(" ", width)
	}
	first := d.Entries[0]
	return top, r.theme.Rating(first.Rating, entry.MaxRating).Render(r.label(d.Entries, width))
}

// label names the first entry of a day and counts the others.
func (r renderer) label(entries []entry.Entry, width int) string {
	suffix := ""
	if n := len(entries) - 1; n > 0 {
		suffix = r.tr.T("calendar.more", map[string]any{"Count": n})
	}
	room := width - runewidth.StringWidth(suffix)
	if room <= 0 {
		return runewidth.FillRight(runewidth.Truncate(suffix, width, ""), width)
	}
	title := runewidth.Truncate(entries[0].Title(), room, "…")
	return runewidth.FillRight(title+suffix, width)
}

// RenderMonth prints one month grid without scrolling chrome, for use
// outside the interactive surface.
func RenderMonth(m calendar.Month[entry.Entry], today calendar.Date, th theme.Theme, tr *locale.Translator, width int) string {
	if len(m.Days) == 0 {
		return ""
	}
	if tr == nil {
		tr = locale.New("en")
	}
	r := renderer{
		theme:  th,
		tr:     tr,
		header: tr.WeekHeader(m.Days[0].Date.Weekday()),
		cell:   cellWidth(width),
		today:  today,
	}
	lines := r.month(m)
	return lipgloss.JoinVertical(lipgloss.Left, trimBlank(lines)...)
}

func trimBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

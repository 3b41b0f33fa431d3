package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a compact month grid. Days with entries are bold and today is
// underlined. The entries of the month are listed below the grid.
func (pp *PrettyPrint) Month(grid calendar.Month[entry.Entry], today calendar.Date, weekStart time.Weekday) {
	if len(grid.Days) == 0 {
		return
	}
	key := grid.MonthKey

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprintf("%s %d", key.Month, key.Year)
	mid := (width - len(title)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", max(0, mid)), title)

	head := color.New(color.Faint)
	names := make([]string, 7)
	for i := range names {
		names[i] = ((weekStart + time.Weekday(i)) % 7).String()[:2]
	}
	_, _ = head.Fprintln(pp.out(), strings.Join(names, " "))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for w := 0; w < grid.Weeks(); w++ {
		week := grid.Week(w)
		cells := make([]string, 0, len(week))
		for _, d := range week {
			if !d.InFocusedMonth {
				cells = append(cells, "  ")
				continue
			}
			printer := l1
			if len(d.Entries) > 0 {
				printer = l2
			}
			if d.Date == today {
				printer = color.New(color.Underline, color.Bold)
			}
			cells = append(cells, printer.Sprintf("%2d", d.Date.Day))
		}
		_, _ = fmt.Fprintln(pp.out(), strings.Join(cells, " "))
	}
	pp.NewLine()

	if entries := grid.Entries(); len(entries) > 0 {
		pp.Entries(entries...)
	}
}

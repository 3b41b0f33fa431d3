// Package track prints month grids of the journal.
package track

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/printers"
)

// Track prints Months grids starting at Month.
type Track struct {
	Month     calendar.MonthKey
	Months    int
	WeekStart time.Weekday
	Today     calendar.Date
	Service   *app.Service
	Out       io.Writer
}

func (n *Track) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not print the calendar, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	pp := printers.PrettyPrint{Out: out}
	entries := app.Ordered(n.Service.Entries())
	count := max(1, n.Months)
	for i := 0; i < count; i++ {
		k := n.Month.Add(i)
		grid := calendar.BuildMonthGrid(k.Year, k.Month, entries, calendar.GridOptions{WeekStart: n.WeekStart})
		pp.Month(grid, n.Today, n.WeekStart)
	}
	return nil
}

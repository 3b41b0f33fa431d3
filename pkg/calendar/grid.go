package calendar

import "time"

// Dated is implemented by anything that can be placed on the calendar. ok is
// false when the item carries no usable date.
type Dated interface {
	CalendarDate() (d Date, ok bool)
}

// Day is one cell of a month grid.
type Day[E Dated] struct {
	Date Date
	// InFocusedMonth is false for the padding days borrowed from the
	// neighbouring months to complete the first and last week.
	InFocusedMonth bool
	Entries        []E
}

// Month is the day grid of one calendar month.
type Month[E Dated] struct {
	MonthKey
	Days []Day[E]
}

// Weeks returns the number of grid rows.
func (m Month[E]) Weeks() int {
	return len(m.Days) / 7
}

// Week returns the days of row i.
func (m Month[E]) Week(i int) []Day[E] {
	return m.Days[i*7 : i*7+7]
}

// Entries returns every entry bound to a day of the month itself, in grid
// order.
func (m Month[E]) Entries() []E {
	var out []E
	for _, d := range m.Days {
		if d.InFocusedMonth {
			out = append(out, d.Entries...)
		}
	}
	return out
}

// Day returns the cell for date d, if the grid contains it.
func (m Month[E]) Day(d Date) (Day[E], bool) {
	if len(m.Days) == 0 {
		return Day[E]{}, false
	}
	first := m.Days[0].Date.Time()
	idx := int(d.Time().Sub(first).Hours() / 24)
	if idx < 0 || idx >= len(m.Days) {
		return Day[E]{}, false
	}
	return m.Days[idx], true
}

// GridOptions tune grid construction.
type GridOptions struct {
	// WeekStart is the first column of the grid.
	WeekStart time.Weekday
	// Unbound, when set, is called for every entry whose date cannot be
	// parsed. Such entries are skipped.
	Unbound func(entry any)
}

// Bucket groups entries by date, preserving input order within a date.
func Bucket[E Dated](entries []E, opts GridOptions) map[Date][]E {
	byDate := make(map[Date][]E, len(entries))
	for _, e := range entries {
		d, ok := e.CalendarDate()
		if !ok {
			if opts.Unbound != nil {
				opts.Unbound(e)
			}
			continue
		}
		byDate[d] = append(byDate[d], e)
	}
	return byDate
}

// BuildMonthGrid lays out the month as whole weeks, from the start of the
// week holding the 1st to the end of the week holding the last day, and binds
// each entry to the day matching its date.
func BuildMonthGrid[E Dated](year int, month time.Month, entries []E, opts GridOptions) Month[E] {
	return buildMonth(MonthKey{Year: year, Month: month}, Bucket(entries, opts), opts.WeekStart)
}

func buildMonth[E Dated](key MonthKey, byDate map[Date][]E, weekStart time.Weekday) Month[E] {
	first := key.First()
	last := key.Last()
	start := first.AddDays(-leading(first.Weekday(), weekStart))
	end := last.AddDays(6 - leading(last.Weekday(), weekStart))

	days := make([]Day[E], 0, 42)
	for d := start; !end.Before(d); d = d.AddDays(1) {
		days = append(days, Day[E]{
			Date:           d,
			InFocusedMonth: key.Contains(d),
			Entries:        byDate[d],
		})
	}
	return Month[E]{MonthKey: key, Days: days}
}

// leading returns how many columns precede weekday wd in a week starting on
// weekStart.
func leading(wd, weekStart time.Weekday) int {
	return (int(wd) - int(weekStart) + 7) % 7
}

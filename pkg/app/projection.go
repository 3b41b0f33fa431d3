package app

import (
	"slices"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
)

// Projection returns the entries matching query in store order. A blank query
// returns everything; no match returns an empty, non-nil slice.
func (s *Service) Projection(query string) []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Filter(s.entries, query)
}

// Filter keeps the entries whose description or categories contain query,
// ignoring case.
func Filter(entries []entry.Entry, query string) []entry.Entry {
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Matches(query) {
			out = append(out, e)
		}
	}
	return out
}

// Ordered returns entries sorted by date, ascending. Entries sharing a date
// keep their relative order; entries with unparsable dates go last.
func Ordered(entries []entry.Entry) []entry.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b entry.Entry) int {
		da, okA := a.CalendarDate()
		db, okB := b.CalendarDate()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		case da.Before(db):
			return -1
		case db.Before(da):
			return 1
		}
		return 0
	})
	return out
}

// OnDay returns the entries of entries dated d, in order.
func OnDay(entries []entry.Entry, d calendar.Date) []entry.Entry {
	var out []entry.Entry
	for _, e := range entries {
		if got, ok := e.CalendarDate(); ok && got == d {
			out = append(out, e)
		}
	}
	return out
}

// InMonth returns the entries of entries dated within k, in order.
func InMonth(entries []entry.Entry, k calendar.MonthKey) []entry.Entry {
	var out []entry.Entry
	for _, e := range entries {
		if got, ok := e.CalendarDate(); ok && got.MonthKey() == k {
			out = append(out, e)
		}
	}
	return out
}

// Categories lists the distinct categories in first-seen order.
func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, e := range s.entries {
		for _, c := range e.Categories {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

package timeutil

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/calendar"
)

const layoutISO = "2006-01-02"

// ParseDay reads a date given as DD/MM/YYYY, YYYY-MM-DD, "today" or
// "yesterday". An empty string is today.
func ParseDay(s string, now time.Time) (calendar.Date, error) {
	today := calendar.DateOf(now)
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	default:
		if d, err := calendar.ParseDate(v); err == nil {
			return d, nil
		}
		t, err := time.Parse(layoutISO, v)
		if err != nil {
			return calendar.Date{}, fmt.Errorf("invalid date %q, want DD/MM/YYYY or YYYY-MM-DD", s)
		}
		return calendar.DateOf(t), nil
	}
}

// ParseMonth reads a month given as YYYY-MM, or the current month when s is
// empty. A signed offset such as "-1" or "+2" is relative to now.
func ParseMonth(s string, now time.Time) (calendar.MonthKey, error) {
	current := calendar.MonthOf(now)
	v := strings.TrimSpace(s)
	if v == "" {
		return current, nil
	}
	if v[0] == '+' || v[0] == '-' {
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return calendar.MonthKey{}, fmt.Errorf("invalid month offset %q", s)
		}
		return current.Add(n), nil
	}
	return calendar.ParseMonthKey(v)
}

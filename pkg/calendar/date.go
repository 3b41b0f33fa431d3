// Package calendar builds the month grids and the month ring shown by the
// scrolling calendar.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the wire format for entry dates (DD/MM/YYYY).
const Layout = "02/01/2006"

// ErrBadDate is returned for strings that are not a real DD/MM/YYYY date.
var ErrBadDate = errors.New("calendar: invalid date")

// Date is a civil calendar date without time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the civil date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate normalizes the given fields the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses DD/MM/YYYY, also accepting single digit days and months
// such as 5/8/2025. It rejects dates that do not exist, such as 31/02/2025,
// rather than rolling them over.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 || !digits(parts[0], 1, 2) || !digits(parts[1], 1, 2) || !digits(parts[2], 4, 4) {
		return Date{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrBadDate, s)
		}
		nums[i] = n
	}
	d := Date{Year: nums[2], Month: time.Month(nums[1]), Day: nums[0]}
	if d.Month < time.January || d.Month > time.December || d.Day < 1 || d.Day > DaysIn(d.Year, d.Month) {
		return Date{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return d, nil
}

func digits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday reports the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// MonthKey returns the month the date falls in.
func (d Date) MonthKey() MonthKey {
	return MonthKey{Year: d.Year, Month: d.Month}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// MonthKey identifies a calendar month. Month is 1-based (time.January == 1).
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Add returns the month n calendar months away, rolling over year
// boundaries in either direction.
func (k MonthKey) Add(n int) MonthKey {
	idx := k.Year*12 + int(k.Month-1) + n
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return MonthKey{Year: year, Month: time.Month(month + 1)}
}

// First returns the first day of the month.
func (k MonthKey) First() Date {
	return Date{Year: k.Year, Month: k.Month, Day: 1}
}

// Last returns the last day of the month.
func (k MonthKey) Last() Date {
	return Date{Year: k.Year, Month: k.Month, Day: DaysIn(k.Year, k.Month)}
}

// Contains reports whether d falls inside the month.
func (k MonthKey) Contains(d Date) bool {
	return d.Year == k.Year && d.Month == k.Month
}

// String formats the month as YYYY-MM.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// ParseMonthKey parses YYYY-MM.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return MonthKey{}, fmt.Errorf("calendar: invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// DaysIn returns the number of days in a month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseWeekStart accepts weekday names ("sunday", "Mon", ...).
func ParseWeekStart(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("calendar: unknown week start %q", s)
}

package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name string
	date string
}

func (i item) CalendarDate() (Date, bool) {
	d, err := ParseDate(i.date)
	return d, err == nil
}

func TestBuildMonthGridCompleteness(t *testing.T) {
	for _, ws := range []time.Weekday{time.Sunday, time.Monday, time.Saturday} {
		for year := 2023; year <= 2026; year++ {
			for month := time.January; month <= time.December; month++ {
				g := BuildMonthGrid[item](year, month, nil, GridOptions{WeekStart: ws})
				require.Zero(t, len(g.Days)%7, "%d-%02d", year, month)
				require.GreaterOrEqual(t, len(g.Days), 28)
				require.LessOrEqual(t, len(g.Days), 42)
				assert.Equal(t, ws, g.Days[0].Date.Weekday())

				key := MonthKey{Year: year, Month: month}
				_, hasFirst := g.Day(key.First())
				_, hasLast := g.Day(key.Last())
				assert.True(t, hasFirst)
				assert.True(t, hasLast)

				for i := 1; i < len(g.Days); i++ {
					require.Equal(t, g.Days[i-1].Date.AddDays(1), g.Days[i].Date)
				}
				inMonth := 0
				for _, d := range g.Days {
					if d.InFocusedMonth {
						inMonth++
					}
				}
				assert.Equal(t, DaysIn(year, month), inMonth)
			}
		}
	}
}

func TestBuildMonthGridFebruary2015FitsFourWeeks(t *testing.T) {
	g := BuildMonthGrid[item](2015, time.February, nil, GridOptions{})
	assert.Len(t, g.Days, 28)
	assert.Equal(t, 4, g.Weeks())
}

func TestBuildMonthGridBindsEntries(t *testing.T) {
	entries := []item{
		{name: "a", date: "05/08/2025"},
		{name: "b", date: "05/08/2025"},
		{name: "c", date: "31/07/2025"},
		{name: "bad", date: "2025-08-05"},
		{name: "other", date: "20/09/2025"},
	}
	var unbound []any
	g := BuildMonthGrid(2025, time.August, entries, GridOptions{Unbound: func(e any) { unbound = append(unbound, e) }})

	for _, d := range g.Days {
		switch d.Date {
		case Date{2025, time.August, 5}:
			require.Len(t, d.Entries, 2)
			assert.Equal(t, "a", d.Entries[0].name)
			assert.Equal(t, "b", d.Entries[1].name)
		case Date{2025, time.July, 31}:
			require.Len(t, d.Entries, 1)
			assert.False(t, d.InFocusedMonth)
		default:
			assert.Empty(t, d.Entries, d.Date.String())
		}
	}
	assert.Len(t, unbound, 1)
	assert.Equal(t, []item{entries[0], entries[1]}, g.Entries())
}

func TestBuildMonthGridDeterministic(t *testing.T) {
	entries := []item{{name: "a", date: "29/02/2024"}}
	a := BuildMonthGrid(2024, time.February, entries, GridOptions{WeekStart: time.Monday})
	b := BuildMonthGrid(2024, time.February, entries, GridOptions{WeekStart: time.Monday})
	assert.Equal(t, a, b)
}

func TestMonthKeyAddRollsOverYears(t *testing.T) {
	tests := []struct {
		from MonthKey
		n    int
		want MonthKey
	}{
		{MonthKey{2025, time.October}, 6, MonthKey{2026, time.April}},
		{MonthKey{2025, time.January}, -11, MonthKey{2024, time.February}},
		{MonthKey{2025, time.January}, -1, MonthKey{2024, time.December}},
		{MonthKey{2025, time.December}, 1, MonthKey{2026, time.January}},
		{MonthKey{2025, time.July}, -25, MonthKey{2023, time.June}},
		{MonthKey{2025, time.July}, 0, MonthKey{2025, time.July}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Add(tt.n), "%s%+d", tt.from, tt.n)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("29/02/2024")
	require.NoError(t, err)
	assert.Equal(t, Date{2024, time.February, 29}, d)
	assert.Equal(t, "29/02/2024", d.String())

	for in, want := range map[string]Date{
		"5/8/2025":   {2025, time.August, 5},
		"05/8/2025":  {2025, time.August, 5},
		" 1/12/2024": {2024, time.December, 1},
	} {
		d, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d, in)
	}

	for _, bad := range []string{"", "29/02/2025", "1/2/24", "+1/2/2024", "001/02/2024", "31/04/2024", "00/01/2024", "0/1/2024", "aa/bb/cccc", "05-08-2025"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrBadDate, bad)
	}
}

func TestBuildRing(t *testing.T) {
	entries := []item{{name: "a", date: "15/07/2025"}, {name: "b", date: "01/01/2026"}}
	r := BuildRing(MonthKey{2025, time.July}, 12, entries, GridOptions{})

	require.Equal(t, 25, r.Len())
	assert.Equal(t, MonthKey{2024, time.July}, r.At(0))
	assert.Equal(t, MonthKey{2025, time.July}, r.At(r.PivotIndex()))
	assert.Equal(t, MonthKey{2026, time.July}, r.At(24))
	for i := 1; i < r.Len(); i++ {
		assert.Equal(t, r.At(i-1).Add(1), r.At(i))
	}
	assert.Equal(t, 18, r.IndexOf(MonthKey{2026, time.January}))
	assert.Equal(t, -1, r.IndexOf(MonthKey{2030, time.January}))

	jan := r.Months[18]
	require.Len(t, jan.Entries(), 1)
	assert.Equal(t, "b", jan.Entries()[0].name)
}

func TestParseWeekStart(t *testing.T) {
	d, err := ParseWeekStart("Mon")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	d, err = ParseWeekStart("")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	_, err = ParseWeekStart("someday")
	assert.Error(t, err)
}

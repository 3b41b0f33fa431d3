package app

import (
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
)

// ReportSection summarizes the entries of one month.
type ReportSection struct {
	Month   calendar.MonthKey
	Entries []entry.Entry
	Average float64
}

// ReportResult covers the entries dated within [Since, Until].
type ReportResult struct {
	Since    calendar.Date
	Until    calendar.Date
	Sections []ReportSection
	Total    int
	Average  float64
}

// Report groups the entries dated between since and until by month, oldest
// first, with average ratings.
func (s *Service) Report(since, until calendar.Date) ReportResult {
	if until.Before(since) {
		since, until = until, since
	}
	res := ReportResult{Since: since, Until: until}
	var sum float64
	for _, e := range Ordered(s.Entries()) {
		d, ok := e.CalendarDate()
		if !ok || d.Before(since) || until.Before(d) {
			continue
		}
		key := d.MonthKey()
		if n := len(res.Sections); n == 0 || res.Sections[n-1].Month != key {
			res.Sections = append(res.Sections, ReportSection{Month: key})
		}
		sec := &res.Sections[len(res.Sections)-1]
		sec.Entries = append(sec.Entries, e)
		res.Total++
		sum += e.Rating
	}
	for i := range res.Sections {
		sec := &res.Sections[i]
		var total float64
		for _, e := range sec.Entries {
			total += e.Rating
		}
		sec.Average = total / float64(len(sec.Entries))
	}
	if res.Total > 0 {
		res.Average = sum / float64(res.Total)
	}
	return res
}

// LastDays reports on the n days ending today.
func (s *Service) LastDays(n int) ReportResult {
	today := calendar.DateOf(s.now())
	return s.Report(today.AddDays(-max(0, n-1)), today)
}

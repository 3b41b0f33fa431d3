package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-ical"

	"tableflip.dev/daybook/pkg/entry"
)

const prodID = "-//daybook//journal//EN"

// ExportICS writes the journal as an iCalendar file with one all-day event
// per entry. Entries with unparsable dates are left out.
func (s *Service) ExportICS(w io.Writer) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)

	stamp := s.now().UTC()
	for _, e := range Ordered(s.Entries()) {
		d, ok := e.CalendarDate()
		if !ok {
			continue
		}
		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, e.ID+"@daybook")
		ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		ev.Props.SetDate(ical.PropDateTimeStart, d.Time())
		ev.Props.SetDate(ical.PropDateTimeEnd, d.AddDays(1).Time())
		ev.Props.SetText(ical.PropSummary, summary(e))
		ev.Props.SetText(ical.PropDescription, e.Description)
		if len(e.Categories) > 0 {
			ev.Props.SetText(ical.PropCategories, strings.Join(e.Categories, ","))
		}
		if e.ImgURL != "" {
			// Raw value avoids text escaping of the URL.
			urlProp := ical.NewProp(ical.PropURL)
			urlProp.Value = e.ImgURL
			ev.Props.Set(urlProp)
		}
		cal.Children = append(cal.Children, ev.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("app: encode ics: %w", err)
	}
	return nil
}

func summary(e entry.Entry) string {
	return fmt.Sprintf("%s %s", entry.Stars(e.Rating), e.Title())
}

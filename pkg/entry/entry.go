// Package entry defines a journal entry and the rules a new or edited entry
// must satisfy.
package entry

import (
	"fmt"
	"strings"

	"tableflip.dev/daybook/pkg/calendar"
)

// MaxRating is the top of the rating scale.
const MaxRating = 5.0

// Entry is one journal record. The JSON field names are the persisted layout.
type Entry struct {
	ID          string   `json:"id"`
	ImgURL      string   `json:"imgUrl"`
	Rating      float64  `json:"rating"`
	Categories  []string `json:"categories"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
}

// New builds an entry with the given id from a validated draft.
func New(id string, d Draft) Entry {
	d = d.Normalize()
	return Entry{
		ID:          id,
		ImgURL:      d.ImgURL,
		Rating:      d.Rating,
		Categories:  d.Categories,
		Date:        d.Date,
		Description: d.Description,
	}
}

// CalendarDate parses the entry's DD/MM/YYYY date.
func (e Entry) CalendarDate() (calendar.Date, bool) {
	d, err := calendar.ParseDate(e.Date)
	if err != nil {
		return calendar.Date{}, false
	}
	return d, true
}

// Draft returns the editable fields of the entry.
func (e Entry) Draft() Draft {
	return Draft{
		ImgURL:      e.ImgURL,
		Rating:      e.Rating,
		Categories:  append([]string(nil), e.Categories...),
		Date:        e.Date,
		Description: e.Description,
	}
}

// Matches reports whether query is a case-insensitive substring of the
// description or of any category. A blank query matches everything.
func (e Entry) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Description), q) {
		return true
	}
	for _, c := range e.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// Title is a one line label for lists.
func (e Entry) Title() string {
	if len(e.Categories) > 0 {
		return e.Categories[0]
	}
	return e.Date
}

// Row returns the columns used by table printers.
func (e Entry) Row() (string, string, string, string) {
	return e.Date, Stars(e.Rating), strings.Join(e.Categories, ", "), e.Description
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s  %s", e.Date, Stars(e.Rating), e.Description)
}

package entry

import (
	"net/url"
	"sort"
	"strings"

	"tableflip.dev/daybook/pkg/calendar"
)

// Field names a draft field, using the persisted JSON names.
type Field string

const (
	FieldImage       Field = "imgUrl"
	FieldRating      Field = "rating"
	FieldCategories  Field = "categories"
	FieldDate        Field = "date"
	FieldDescription Field = "description"
)

// FieldErrors maps each invalid field to a message for the user.
type FieldErrors map[Field]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, string(k))
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, k := range fields {
		msgs = append(msgs, k+": "+f[Field(k)])
	}
	return "entry: " + strings.Join(msgs, "; ")
}

// Draft holds the user editable fields of an entry.
type Draft struct {
	ImgURL      string
	Rating      float64
	Categories  []string
	Date        string
	Description string
}

// NewDraft starts a draft for day d with the default rating.
func NewDraft(d calendar.Date) Draft {
	return Draft{Rating: MaxRating, Date: d.String()}
}

// Normalize trims every text field, writes a valid date as DD/MM/YYYY and
// drops blank categories.
func (d Draft) Normalize() Draft {
	out := Draft{
		ImgURL:      strings.TrimSpace(d.ImgURL),
		Rating:      d.Rating,
		Date:        strings.TrimSpace(d.Date),
		Description: strings.TrimSpace(d.Description),
	}
	if date, err := calendar.ParseDate(out.Date); err == nil {
		out.Date = date.String()
	}
	for _, c := range d.Categories {
		if c = strings.TrimSpace(c); c != "" {
			out.Categories = append(out.Categories, c)
		}
	}
	return out
}

// Validate returns FieldErrors describing every problem with the draft, or
// nil.
func (d Draft) Validate() error {
	d = d.Normalize()
	errs := FieldErrors{}

	switch {
	case d.ImgURL == "":
		errs[FieldImage] = "Image URL is required"
	case !validURL(d.ImgURL):
		errs[FieldImage] = "Please enter a valid URL"
	}

	if d.Description == "" {
		errs[FieldDescription] = "Description is required"
	}

	switch {
	case d.Date == "":
		errs[FieldDate] = "Date is required"
	default:
		if _, err := calendar.ParseDate(d.Date); err != nil {
			errs[FieldDate] = "Please enter a valid date (DD/MM/YYYY)"
		}
	}

	if len(d.Categories) == 0 {
		errs[FieldCategories] = "At least one category is required"
	}

	if d.Rating < 0 || d.Rating > MaxRating {
		errs[FieldRating] = "Rating must be between 0 and 5"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// SplitCategories turns a comma separated list into categories.
func SplitCategories(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

func validURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

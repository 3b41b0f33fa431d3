// Package printers renders journal entries for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
)

// PrettyPrint writes colored tables to Out, or color.Output when Out is nil.
type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints one row per entry.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	stars := color.New(color.FgYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true

	header := []any{bold.Sprint("Date"), bold.Sprint("Rating"), bold.Sprint("Categories"), bold.Sprint("Description")}
	if pp.ShowID {
		header = append([]any{bold.Sprint("ID")}, header...)
	}
	tbl.AddRow(header...)

	for _, e := range entries {
		date, rating, cats, desc := e.Row()
		row := []any{date, stars.Sprint(rating), cats, desc}
		if pp.ShowID {
			row = append([]any{id.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints every field of one entry.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("id"), e.ID)
	tbl.AddRow(faint.Sprint("date"), e.Date)
	tbl.AddRow(faint.Sprint("rating"), fmt.Sprintf("%s %s", entry.Stars(e.Rating), entry.FormatRating(e.Rating)))
	tbl.AddRow(faint.Sprint("categories"), strings.Join(e.Categories, ", "))
	tbl.AddRow(faint.Sprint("image"), e.ImgURL)
	tbl.AddRow(faint.Sprint("description"), e.Description)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Report prints a report grouped by month.
func (pp *PrettyPrint) Report(result app.ReportResult, label string) {
	_, _ = fmt.Fprintf(pp.out(), "Report · last %s (%s → %s)\n", label, result.Since, result.Until)

	if result.Total == 0 {
		_, _ = fmt.Fprintln(pp.out(), "  No entries found in this window.")
		pp.NewLine()
		return
	}

	for _, section := range result.Sections {
		pp.NewLine()
		pp.TitleWithCount(section.Month.String(), len(section.Entries))
		for _, e := range section.Entries {
			_, _ = fmt.Fprintf(pp.out(), "  %s %s  %s\n", e.Date, entry.Stars(e.Rating), e.Description)
		}
		faint := color.New(color.Faint)
		_, _ = faint.Fprintf(pp.out(), "  average %s\n", entry.FormatRating(section.Average))
	}

	pp.NewLine()
	_, _ = fmt.Fprintf(pp.out(), "%d entries, average %s\n", result.Total, entry.FormatRating(result.Average))
}

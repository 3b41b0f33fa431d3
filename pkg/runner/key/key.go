// Package key prints the legend of the calendar symbols and ratings.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
)

// Key prints the calendar legend.
type Key struct {
	Out io.Writer
}

// Do renders the symbol and rating keys.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Key(out, "Symbols", glyph.DefaultGlyphs())
	_, _ = fmt.Fprintln(out, "")

	ratings := make([]glyph.Glyph, 0, int(entry.MaxRating)+1)
	for r := entry.MaxRating; r >= 0; r-- {
		ratings = append(ratings, glyph.Glyph{Symbol: entry.Stars(r), Meaning: entry.FormatRating(r)})
	}
	k.Key(out, "Ratings", ratings)
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders one legend table.
func (k *Key) Key(out io.Writer, title string, rows []glyph.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold(title), glyph.Bold("Meaning"))
	for _, v := range rows {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}

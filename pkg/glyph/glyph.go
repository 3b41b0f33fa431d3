// Package glyph holds the marks drawn on calendar days and their meanings.
package glyph

import "fmt"

type Glyph struct {
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	faintCode     = 2
	underlineCode = 4
	reverseCode   = 7
)

func sgr(code int, in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, code, in, escape, resetCode)
}

func Bold(in string) string {
	return sgr(boldCode, in)
}

func Faint(in string) string {
	return sgr(faintCode, in)
}

func Underline(in string) string {
	return sgr(underlineCode, in)
}

func Reverse(in string) string {
	return sgr(reverseCode, in)
}

type Mark int

const (
	HasEntries Mark = iota
	More
	Today
	Cursor
	Padding
)

// Marked is the suffix added to the day number of a day with entries.
const Marked = " •"

func DefaultGlyphs() []Glyph {
	return []Glyph{
		HasEntries: {Symbol: "•", Meaning: "the day has entries"},
		More:       {Symbol: "+2", Meaning: "more entries than the cell can show"},
		Today:      {Symbol: Underline("15"), Meaning: "today"},
		Cursor:     {Symbol: Reverse("15"), Meaning: "the highlighted day"},
		Padding:    {Symbol: Faint("30"), Meaning: "a day of the neighbouring month"},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().String()
}

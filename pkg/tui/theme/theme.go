package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar CalendarTheme
	Footer   FooterTheme
	Modal    ModalTheme

	low, high colorful.Color
	dark      bool
}

// CalendarTheme styles the month header and the day grid.
type CalendarTheme struct {
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	Weekday      lipgloss.Style
	MonthTitle   lipgloss.Style
	Day          lipgloss.Style
	Padding      lipgloss.Style
	Today        lipgloss.Style
	Cursor       lipgloss.Style
	Entry        lipgloss.Style
	Search       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles centered modal overlays (detail, form, confirm).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Focus lipgloss.Style
}

// Default returns the built-in theme for the current terminal background.
func Default() Theme {
	return For(termenv.HasDarkBackground())
}

// For returns the theme for a dark or light background.
func For(dark bool) Theme {
	fg, muted, accent, subtle := lipgloss.Color("15"), lipgloss.Color("244"), lipgloss.Color("212"), lipgloss.Color("238")
	low, high := mustHex("#c0392b"), mustHex("#f1c40f")
	if !dark {
		fg, muted, accent, subtle = lipgloss.Color("0"), lipgloss.Color("243"), lipgloss.Color("127"), lipgloss.Color("252")
		low, high = mustHex("#a93226"), mustHex("#b7950b")
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(fg).Padding(0, 1)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(1, 2)

	return Theme{
		Calendar: CalendarTheme{
			Header:       header,
			HeaderActive: header.Foreground(accent).Underline(true),
			Weekday:      lipgloss.NewStyle().Foreground(muted).Bold(true),
			MonthTitle:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Day:          lipgloss.NewStyle().Foreground(fg),
			Padding:      lipgloss.NewStyle().Foreground(subtle),
			Today:        lipgloss.NewStyle().Underline(true).Bold(true),
			Cursor:       lipgloss.NewStyle().Reverse(true),
			Entry:        lipgloss.NewStyle().Foreground(fg),
			Search:       lipgloss.NewStyle().Foreground(muted),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(muted),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
		Modal: ModalTheme{
			Frame: frame,
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:  lipgloss.NewStyle(),
			Muted: lipgloss.NewStyle().Foreground(muted),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Focus: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		low:  low,
		high: high,
		dark: dark,
	}
}

// Dark reports whether the theme targets a dark background.
func (t Theme) Dark() bool { return t.dark }

// RatingColor blends from the low to the high rating color.
func (t Theme) RatingColor(rating, maxRating float64) color.Color {
	if maxRating <= 0 {
		maxRating = 1
	}
	p := rating / maxRating
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return lipgloss.Color(t.low.BlendLab(t.high, p).Clamped().Hex())
}

// Rating styles text in the color for rating.
func (t Theme) Rating(rating, maxRating float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.RatingColor(rating, maxRating))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

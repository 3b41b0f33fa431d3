// Package overlay draws one rendered view on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment and sizing.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Centered places the overlay in the middle of the screen.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose overlays foreground atop background. Background cells outside the
// overlay keep their styling; the background is clipped or padded to
// width x height first.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bg := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bg, "\n")
	}
	fg := strings.Split(foreground, "\n")

	w := placement.Width
	if w <= 0 {
		for _, line := range fg {
			w = max(w, ansi.StringWidth(line))
		}
	}
	w = min(w, width)
	h := placement.Height
	if h <= 0 {
		h = len(fg)
	}
	h = min(h, height)
	if w <= 0 || h <= 0 {
		return strings.Join(bg, "\n")
	}

	x, y := offsets(width, height, w, h, placement)
	for row := 0; row < h; row++ {
		line := ""
		if row < len(fg) {
			line = fg[row]
		}
		base := bg[y+row]
		bg[y+row] = ansi.Cut(base, 0, x) + "\x1b[0m" + pad(line, w) + "\x1b[0m" + ansi.Cut(base, x+w, width)
	}
	return strings.Join(bg, "\n")
}

// Dim strips styling from a background so an overlay stands out.
func Dim(background string, style lipgloss.Style) string {
	lines := strings.Split(background, "\n")
	for i, l := range lines {
		lines[i] = style.Render(ansi.Strip(l))
	}
	return strings.Join(lines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func offsets(width, height, w, h int, p Placement) (int, int) {
	x := p.MarginX
	switch p.Horizontal {
	case lipgloss.Right:
		x = width - w - p.MarginX
	case lipgloss.Center:
		x = (width - w) / 2
	}
	y := p.MarginY
	switch p.Vertical {
	case lipgloss.Bottom:
		y = height - h - p.MarginY
	case lipgloss.Center:
		y = (height - h) / 2
	}
	return min(max(0, x), width-w), min(max(0, y), height-h)
}

// Package scroll turns a scroll offset over a column of equally tall months
// into what should be mounted, which month is in focus, and where to scroll
// to reach a given month.
package scroll

import "errors"

const (
	// DefaultLookAhead is the number of extra months mounted on each side of
	// the viewport.
	DefaultLookAhead = 2
	// DefaultMinWindow is the smallest number of months ever mounted.
	DefaultMinWindow = 10
)

// ErrItemHeight is returned when a month height is not positive.
var ErrItemHeight = errors.New("scroll: item height must be positive")

// Window is a half-open range [Start, End) of ring indices.
type Window struct {
	Start int
	End   int
}

// Len returns the number of indices in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Contains reports whether index i is mounted.
func (w Window) Contains(i int) bool {
	return i >= w.Start && i < w.End
}

// Mapper maps scroll offsets to mounted windows.
type Mapper struct {
	itemHeight int
	lookAhead  int
	minWindow  int
}

// NewMapper validates the geometry once so that Map never has to.
func NewMapper(itemHeight, lookAhead, minWindow int) (*Mapper, error) {
	if itemHeight <= 0 {
		return nil, ErrItemHeight
	}
	if lookAhead < 0 {
		lookAhead = 0
	}
	if minWindow < 0 {
		minWindow = 0
	}
	return &Mapper{itemHeight: itemHeight, lookAhead: lookAhead, minWindow: minWindow}, nil
}

// ItemHeight returns the height of one month.
func (m *Mapper) ItemHeight() int {
	return m.itemHeight
}

// Map returns the window to mount for the viewport [offset, offset+viewport).
//
// The window never shrinks below the minimum while the ring can fill it: when
// the end is clamped to the ring, the start is pulled back instead. That keeps
// Start non-decreasing in offset.
func (m *Mapper) Map(offset, viewport, ringLen int) Window {
	if ringLen <= 0 {
		return Window{}
	}
	if offset < 0 {
		offset = 0
	}
	if viewport < 0 {
		viewport = 0
	}

	start := max(0, offset/m.itemHeight-m.lookAhead)
	end := max(start+m.minWindow, ceilDiv(offset+viewport, m.itemHeight)+m.lookAhead)

	if end > ringLen {
		end = ringLen
	}
	if floor := max(0, ringLen-m.minWindow); start > floor {
		start = floor
	}
	if start > end {
		start = end
	}
	return Window{Start: start, End: end}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

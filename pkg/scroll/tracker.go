package scroll

import "tableflip.dev/daybook/pkg/calendar"

// Focus is the month the header displays.
type Focus = calendar.MonthKey

// Months is the read-only view of a month ring needed for tracking and
// navigation. calendar.Ring satisfies it for any entry type.
type Months interface {
	Len() int
	At(i int) calendar.MonthKey
	IndexOf(k calendar.MonthKey) int
}

// Tracker derives the focused month from the scroll offset.
type Tracker struct {
	itemHeight int
}

// NewTracker returns a tracker for months of the given height.
func NewTracker(itemHeight int) (*Tracker, error) {
	if itemHeight <= 0 {
		return nil, ErrItemHeight
	}
	return &Tracker{itemHeight: itemHeight}, nil
}

// Index returns the ring index whose band is closest to offset, clamped to
// the ring.
func (t *Tracker) Index(offset, ringLen int) int {
	if ringLen <= 0 {
		return -1
	}
	if offset < 0 {
		offset = 0
	}
	idx := (2*offset + t.itemHeight) / (2 * t.itemHeight)
	return min(idx, ringLen-1)
}

// Track reports the month at offset and whether it differs from previous.
// Offsets that resolve to the same month never report a change, so scroll
// noise inside one band cannot retrigger the header.
func (t *Tracker) Track(offset int, ring Months, previous Focus) (Focus, bool) {
	idx := t.Index(offset, ring.Len())
	if idx < 0 {
		return previous, false
	}
	focus := ring.At(idx)
	if focus == previous {
		return previous, false
	}
	return focus, true
}

package scroll

import "tableflip.dev/daybook/pkg/calendar"

// Command asks the viewport to move to Offset, which is the top of the
// month at ring index Index.
type Command struct {
	Target calendar.MonthKey
	Index  int
	Offset int
	Smooth bool
}

// Navigator converts month targets into scroll commands.
type Navigator struct {
	itemHeight int
}

// NewNavigator returns a navigator for months of the given height.
func NewNavigator(itemHeight int) (*Navigator, error) {
	if itemHeight <= 0 {
		return nil, ErrItemHeight
	}
	return &Navigator{itemHeight: itemHeight}, nil
}

// NavigateTo returns a smooth scroll command to the month, or false when the
// month lies outside the ring. The ring is never re-centred here.
func (n *Navigator) NavigateTo(target calendar.MonthKey, ring Months) (Command, bool) {
	idx := ring.IndexOf(target)
	if idx < 0 {
		return Command{}, false
	}
	return Command{Target: target, Index: idx, Offset: idx * n.itemHeight, Smooth: true}, true
}

// Step navigates delta months away from base. Callers pass the focused month,
// or the target of a scroll still in flight, so that repeated key presses
// accumulate across month and year boundaries.
func (n *Navigator) Step(base calendar.MonthKey, delta int, ring Months) (Command, bool) {
	return n.NavigateTo(base.Add(delta), ring)
}

// Home returns the offset of the ring's pivot.
func (n *Navigator) Home(pivotIndex int) int {
	return pivotIndex * n.itemHeight
}

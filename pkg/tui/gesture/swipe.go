// Package gesture recognizes horizontal swipes from mouse press, motion and
// release events.
package gesture

// Terminal defaults, in cells.
const (
	DefaultDragSlop  = 2
	DefaultThreshold = 6
)

// Direction is the recognized swipe.
type Direction int

const (
	None Direction = iota
	// Left means the pointer moved left: show the next item.
	Left
	// Right means the pointer moved right: show the previous item.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Swipe tracks one pointer. A press becomes a drag once it has moved more
// than DragSlop cells, and a drag released more than Threshold cells from
// where it started is a swipe.
type Swipe struct {
	DragSlop  int
	Threshold int

	pressed  bool
	dragging bool
	startX   int
	lastX    int
}

// NewSwipe returns a detector. Non-positive values use the defaults.
func NewSwipe(dragSlop, threshold int) *Swipe {
	if dragSlop <= 0 {
		dragSlop = DefaultDragSlop
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Swipe{DragSlop: dragSlop, Threshold: threshold}
}

// Press starts tracking at column x.
func (s *Swipe) Press(x int) {
	s.pressed = true
	s.dragging = false
	s.startX, s.lastX = x, x
}

// Move records pointer motion and reports whether a drag is in progress.
func (s *Swipe) Move(x int) bool {
	if !s.pressed {
		return false
	}
	s.lastX = x
	if !s.dragging && abs(x-s.startX) > s.DragSlop {
		s.dragging = true
	}
	return s.dragging
}

// Release ends tracking and returns the recognized swipe, if any.
func (s *Swipe) Release(x int) Direction {
	if !s.pressed {
		return None
	}
	s.Move(x)
	dragging := s.dragging
	s.Cancel()
	if !dragging {
		return None
	}
	switch d := s.startX - x; {
	case d > s.Threshold:
		return Left
	case d < -s.Threshold:
		return Right
	}
	return None
}

// Offset is how far the pointer has been dragged, for rendering feedback.
func (s *Swipe) Offset() int {
	if !s.dragging {
		return 0
	}
	return s.lastX - s.startX
}

// Dragging reports whether a drag is in progress.
func (s *Swipe) Dragging() bool {
	return s.dragging
}

// Cancel forgets the current pointer.
func (s *Swipe) Cancel() {
	s.pressed = false
	s.dragging = false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

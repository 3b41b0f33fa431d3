package scroll

// Config holds the geometry shared by the mapper, tracker and navigator.
type Config struct {
	ItemHeight int
	LookAhead  int
	MinWindow  int
}

// State is the result of one scroll event. Window and Focus are always
// computed from the same Offset.
type State struct {
	Offset  int
	Window  Window
	Focus   Focus
	Changed bool
}

// Engine owns the scroll offset of one calendar surface and re-derives the
// mounted window and the focused month whenever it moves.
type Engine struct {
	mapper  *Mapper
	tracker *Tracker
	nav     *Navigator

	ring     Months
	offset   int
	viewport int
	state    State
}

// NewEngine validates cfg and returns an engine with no ring.
func NewEngine(cfg Config) (*Engine, error) {
	mapper, err := NewMapper(cfg.ItemHeight, cfg.LookAhead, cfg.MinWindow)
	if err != nil {
		return nil, err
	}
	tracker, err := NewTracker(cfg.ItemHeight)
	if err != nil {
		return nil, err
	}
	nav, err := NewNavigator(cfg.ItemHeight)
	if err != nil {
		return nil, err
	}
	return &Engine{mapper: mapper, tracker: tracker, nav: nav}, nil
}

// ItemHeight is the height of one month.
func (e *Engine) ItemHeight() int {
	return e.mapper.ItemHeight()
}

// Navigator exposes the engine's navigator.
func (e *Engine) Navigator() *Navigator {
	return e.nav
}

// Ring returns the current ring.
func (e *Engine) Ring() Months {
	return e.ring
}

// State returns the last computed state.
func (e *Engine) State() State {
	return e.state
}

// Offset is the current scroll offset.
func (e *Engine) Offset() int {
	return e.offset
}

// Viewport is the current viewport height.
func (e *Engine) Viewport() int {
	return e.viewport
}

// ContentHeight is the height of the whole virtual surface. The tail is
// padded so the last month can still be scrolled to the top of the viewport.
func (e *Engine) ContentHeight() int {
	if e.ring == nil || e.ring.Len() == 0 {
		return 0
	}
	h := e.ItemHeight()
	return e.ring.Len()*h + max(0, e.viewport-h)
}

// MaxOffset is the largest reachable offset.
func (e *Engine) MaxOffset() int {
	return max(0, e.ContentHeight()-e.viewport)
}

// SetRing swaps the ring, keeping the offset, and re-evaluates. Rings built
// from a new projection have the same keys, so the focus is normally kept.
func (e *Engine) SetRing(ring Months) State {
	e.ring = ring
	return e.ScrollTo(e.offset)
}

// Resize records a new viewport height and re-evaluates.
func (e *Engine) Resize(viewport int) State {
	e.viewport = max(0, viewport)
	return e.ScrollTo(e.offset)
}

// ScrollBy moves the offset by delta.
func (e *Engine) ScrollBy(delta int) State {
	return e.ScrollTo(e.offset + delta)
}

// ScrollTo is the single scroll event path: it clamps the offset and derives
// window and focus from that one reading.
func (e *Engine) ScrollTo(offset int) State {
	offset = min(max(0, offset), e.MaxOffset())
	e.offset = offset
	if e.ring == nil || e.ring.Len() == 0 {
		e.state = State{Offset: offset}
		return e.state
	}
	focus, changed := e.tracker.Track(offset, e.ring, e.state.Focus)
	e.state = State{
		Offset:  offset,
		Window:  e.mapper.Map(offset, e.viewport, e.ring.Len()),
		Focus:   focus,
		Changed: changed,
	}
	return e.state
}

// Clamp returns offset limited to the reachable range.
func (e *Engine) Clamp(offset int) int {
	return min(max(0, offset), e.MaxOffset())
}

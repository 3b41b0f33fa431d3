package scroll

import "time"

const (
	// DefaultFrames is the number of frames in a smooth scroll.
	DefaultFrames = 8
	// DefaultFrameInterval is the time between frames.
	DefaultFrameInterval = 16 * time.Millisecond
)

// Animation eases the scroll offset from one value to another over a fixed
// number of frames. Starting a new animation, or Cancel, invalidates the
// frames of the previous one.
type Animation struct {
	frames   int
	interval time.Duration

	from, to int
	step     int
	seq      Token
	running  bool
}

// NewAnimation returns an idle animation. Non-positive arguments use the
// defaults.
func NewAnimation(frames int, interval time.Duration) *Animation {
	if frames <= 0 {
		frames = DefaultFrames
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Animation{frames: frames, interval: interval}
}

// Interval is the time to wait before each frame.
func (a *Animation) Interval() time.Duration {
	return a.interval
}

// Start begins a scroll from -> to and returns the token for its frames.
func (a *Animation) Start(from, to int) Token {
	a.seq++
	a.from, a.to = from, to
	a.step = 0
	a.running = from != to
	return a.seq
}

// Running reports whether frames are still pending.
func (a *Animation) Running() bool {
	return a.running
}

// Target is the offset the current animation ends at.
func (a *Animation) Target() int {
	return a.to
}

// Frame advances the animation identified by tok. It returns the offset to
// apply and whether more frames follow. ok is false for stale tokens.
func (a *Animation) Frame(tok Token) (offset int, more bool, ok bool) {
	if tok != a.seq || !a.running {
		return 0, false, false
	}
	a.step++
	if a.step >= a.frames {
		a.running = false
		return a.to, false, true
	}
	p := float64(a.step) / float64(a.frames)
	eased := 1 - (1-p)*(1-p)*(1-p)
	return a.from + int(float64(a.to-a.from)*eased), true, true
}

// Cancel stops the current animation where it is.
func (a *Animation) Cancel() {
	a.seq++
	a.running = false
}

package scroll

import "time"

// DefaultAnnounce is how long the header stays highlighted after the focused
// month changes.
const DefaultAnnounce = 300 * time.Millisecond

// AnnounceState is the header animation state.
type AnnounceState int

const (
	// Idle means the header is at rest.
	Idle AnnounceState = iota
	// Announcing means a month change is being announced.
	Announcing
)

func (s AnnounceState) String() string {
	if s == Announcing {
		return "announcing"
	}
	return "idle"
}

// Token identifies one scheduled expiry. Only the latest token can end an
// announcement.
type Token uint64

// Announcer is the Idle/Announcing state machine. A month change moves it to
// Announcing and hands back a token for the caller to schedule; the expiry
// for that token moves it back to Idle. A newer change supersedes any pending
// expiry, and after Stop nothing moves it again.
type Announcer struct {
	delay   time.Duration
	state   AnnounceState
	current Token
	stopped bool
}

// NewAnnouncer returns an idle announcer. Non-positive delays use
// DefaultAnnounce.
func NewAnnouncer(delay time.Duration) *Announcer {
	if delay <= 0 {
		delay = DefaultAnnounce
	}
	return &Announcer{delay: delay}
}

// Delay is the time between Trigger and the matching Expire.
func (a *Announcer) Delay() time.Duration {
	return a.delay
}

// State returns the current state.
func (a *Announcer) State() AnnounceState {
	return a.state
}

// Active reports whether the header should render as announcing.
func (a *Announcer) Active() bool {
	return a.state == Announcing
}

// Trigger records a month change. ok is false once the announcer is stopped.
func (a *Announcer) Trigger() (tok Token, ok bool) {
	if a.stopped {
		return 0, false
	}
	a.current++
	a.state = Announcing
	return a.current, true
}

// Expire ends the announcement started by tok. Stale tokens are ignored and
// report false.
func (a *Announcer) Expire(tok Token) bool {
	if a.stopped || tok != a.current || a.state != Announcing {
		return false
	}
	a.state = Idle
	return true
}

// Stop disposes the announcer; pending expiries become no-ops.
func (a *Announcer) Stop() {
	a.stopped = true
	a.state = Idle
	a.current++
}

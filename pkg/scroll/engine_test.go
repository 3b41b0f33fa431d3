package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/calendar"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Config{ItemHeight: 400, LookAhead: DefaultLookAhead, MinWindow: DefaultMinWindow})
	require.NoError(t, err)
	return e
}

func TestEngineInitialState(t *testing.T) {
	e := newEngine(t)
	ring := ringAround(2025, time.July, calendar.DefaultBuffer)

	e.Resize(800)
	e.SetRing(ring)
	st := e.ScrollTo(e.Navigator().Home(ring.PivotIndex()))

	assert.Equal(t, 4800, st.Offset)
	assert.Equal(t, Window{Start: 10, End: 20}, st.Window)
	assert.Equal(t, Focus{Year: 2025, Month: time.July}, st.Focus)
	assert.True(t, st.Changed)
	assert.Equal(t, 25*400+400, e.ContentHeight())
	assert.Equal(t, 24*400, e.MaxOffset())
}

func TestEngineReachesLastMonth(t *testing.T) {
	e := newEngine(t)
	ring := ringAround(2025, time.July, calendar.DefaultBuffer)
	e.Resize(800)
	e.SetRing(ring)

	last := ring.Len() - 1
	cmd, ok := e.Navigator().NavigateTo(ring.At(last), ring)
	require.True(t, ok)
	st := e.ScrollTo(cmd.Offset)
	assert.Equal(t, cmd.Offset, st.Offset)
	assert.Equal(t, ring.At(last), st.Focus)
	assert.True(t, st.Window.Contains(last))

	// A viewport shorter than a month needs no padding.
	e.Resize(300)
	assert.Equal(t, 25*400, e.ContentHeight())
	assert.Equal(t, 25*400-300, e.MaxOffset())
}

func TestEngineConsistentPerEvent(t *testing.T) {
	e := newEngine(t)
	ring := ringAround(2025, time.July, calendar.DefaultBuffer)
	e.Resize(800)
	e.SetRing(ring)

	tr, _ := NewTracker(400)
	for _, off := range []int{0, 199, 200, 4799, 5000, 9100, 9200} {
		st := e.ScrollTo(off)
		idx := tr.Index(st.Offset, ring.Len())
		require.True(t, st.Window.Contains(idx), "offset %d: focus index %d outside %+v", off, idx, st.Window)
		require.Equal(t, ring.At(idx), st.Focus)
	}
}

func TestEngineClampsOffset(t *testing.T) {
	e := newEngine(t)
	e.Resize(800)
	e.SetRing(ringAround(2025, time.July, calendar.DefaultBuffer))

	assert.Equal(t, 0, e.ScrollTo(-100).Offset)
	assert.Equal(t, e.MaxOffset(), e.ScrollBy(1_000_000).Offset)
	assert.Equal(t, e.MaxOffset()-1, e.ScrollBy(-1).Offset)
	assert.Equal(t, 0, e.Clamp(-5))
}

func TestEngineChangedOnlyOnNewMonth(t *testing.T) {
	e := newEngine(t)
	e.Resize(800)
	e.SetRing(ringAround(2025, time.July, calendar.DefaultBuffer))
	e.ScrollTo(4800)

	for i := 0; i < 5; i++ {
		assert.False(t, e.ScrollBy(10).Changed)
	}
	st := e.ScrollTo(5200)
	assert.True(t, st.Changed)
	assert.Equal(t, Focus{Year: 2025, Month: time.August}, st.Focus)

	// A rebuilt ring with the same keys keeps the focus.
	st = e.SetRing(ringAround(2025, time.July, calendar.DefaultBuffer))
	assert.False(t, st.Changed)
}

func TestEngineWithoutRing(t *testing.T) {
	e := newEngine(t)
	st := e.Resize(100)
	assert.Equal(t, State{}, st)
	assert.Equal(t, 0, e.MaxOffset())

	_, err := NewEngine(Config{})
	assert.ErrorIs(t, err, ErrItemHeight)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventChanged indicates the stored journal was written.
	EventChanged EventType = iota

	// EventInvalidated signals a change that could not be classified, such
	// as a watcher error. Callers should reload.
	EventInvalidated
)

func (t EventType) String() string {
	if t == EventInvalidated {
		return "invalidated"
	}
	return "changed"
}

// Event is emitted by Store.Watch when the underlying storage changes.
type Event struct {
	Type EventType
	Name string
}

// throttleDelay coalesces the bursts of writes a single save produces.
const throttleDelay = 100 * time.Millisecond

// watchFiles streams events for files in dir accepted by match until ctx is
// cancelled. The channel is closed once ctx is done or the watcher fails.
func watchFiles(ctx context.Context, dir string, match func(name string) bool) (<-chan Event, error) {
	if dir == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	log := slog.Default().With("component", "store.watch", "dir", dir)
	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn("watcher close", "err", err)
			}
		}()

		var sendMu sync.Mutex
		done := false
		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if done {
				return
			}
			select {
			case events <- ev:
			default:
				// The consumer reloads everything on any event, so one
				// pending event is as good as many.
			}
		}

		throttle := newEventThrottle(throttleDelay)
		defer func() {
			throttle.Stop()
			sendMu.Lock()
			done = true
			sendMu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("watcher error", "err", err)
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(evt.Name)
				if !match(name) {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Enqueue(Event{Type: EventChanged, Name: name}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so the UI reloads once
// per burst of filesystem activity.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]string
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]string),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[ev.Type] = ev.Name
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]string)
	t.timer = nil
	t.mu.Unlock()

	for typ, name := range pending {
		send(Event{Type: typ, Name: name})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}

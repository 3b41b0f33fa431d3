package store

import (
	"context"
	"sync"

	"tableflip.dev/daybook/pkg/entry"
)

// Memory is a Store that keeps the journal in process. Every Save notifies
// the active watchers.
type Memory struct {
	mu       sync.Mutex
	data     []byte
	saved    bool
	watchers map[chan Event]struct{}
	// FailLoad and FailSave make the next operations fail, for exercising
	// fallback paths.
	FailLoad error
	FailSave error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{watchers: make(map[chan Event]struct{})}
}

func (m *Memory) Load(ctx context.Context) ([]entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailLoad != nil {
		return nil, m.FailLoad
	}
	if !m.saved {
		return nil, ErrNotFound
	}
	return decode(m.data)
}

func (m *Memory) Save(ctx context.Context, entries []entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSave != nil {
		return m.FailSave
	}
	data, err := encode(entries)
	if err != nil {
		return err
	}
	m.data = data
	m.saved = true
	for ch := range m.watchers {
		select {
		case ch <- Event{Type: EventChanged, Name: Key}:
		default:
		}
	}
	return nil
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 8)
	m.mu.Lock()
	m.watchers[ch] = struct{}{}
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watchers, ch)
		close(ch)
		m.mu.Unlock()
	}()
	return ch, nil
}

func (m *Memory) Close() error {
	return nil
}

// Package app holds the journal operations shared by the calendar UI and the
// command line.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/store"
)

var (
	// ErrNotFound is returned for unknown entry ids.
	ErrNotFound = errors.New("app: entry not found")
	// ErrFallback wraps storage failures that were answered with the
	// built-in sample journal.
	ErrFallback = errors.New("app: using sample journal")

	errNoStore = errors.New("app: no store configured")
)

// Service owns the in-memory journal and writes every change through to the
// Store. Save failures keep the in-memory change and are returned.
type Service struct {
	Store store.Store
	// Now is used for export names and reports. Defaults to time.Now.
	Now func() time.Time
	// NewID generates entry ids. Defaults to random UUIDs.
	NewID func() string

	mu      sync.Mutex
	entries []entry.Entry
	log     *slog.Logger
}

// New returns a service over st.
func New(st store.Store) *Service {
	return &Service{Store: st}
}

func (s *Service) logger() *slog.Logger {
	if s.log == nil {
		s.log = slog.Default().With("component", "app")
	}
	return s.log
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Load reads the journal from the store. A missing journal is seeded with the
// sample entries; an empty one shows them without saving. When the store
// fails the sample entries are used and the returned error wraps ErrFallback;
// the entries are usable either way.
func (s *Service) Load(ctx context.Context) ([]entry.Entry, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	loaded, err := s.Store.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		loaded = entry.Defaults()
		if serr := s.Store.Save(ctx, loaded); serr != nil {
			s.logger().Error("seed journal", "err", serr)
		}
		err = nil
	case err != nil:
		s.logger().Error("load journal", "err", err)
		loaded = entry.Defaults()
		err = fmt.Errorf("%w: %w", ErrFallback, err)
	case len(loaded) == 0:
		loaded = entry.Defaults()
	}

	s.mu.Lock()
	s.entries = loaded
	s.mu.Unlock()
	return slices.Clone(loaded), err
}

// Reload re-reads the store after an external change. Unlike Load it never
// replaces the journal with the sample entries: a failing or missing store
// leaves the in-memory journal untouched. changed reports whether the
// journal differs from before.
func (s *Service) Reload(ctx context.Context) (changed bool, err error) {
	if s.Store == nil {
		return false, errNoStore
	}
	loaded, err := s.Store.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	case err != nil:
		s.logger().Warn("reload journal", "err", err)
		return false, fmt.Errorf("app: reload: %w", err)
	case len(loaded) == 0:
		loaded = entry.Defaults()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sameEntries(s.entries, loaded) {
		return false, nil
	}
	s.entries = loaded
	return true, nil
}

func sameEntries(a, b []entry.Entry) bool {
	return slices.EqualFunc(a, b, func(x, y entry.Entry) bool {
		return x.ID == y.ID && x.Date == y.Date && x.Rating == y.Rating &&
			x.ImgURL == y.ImgURL && x.Description == y.Description &&
			slices.Equal(x.Categories, y.Categories)
	})
}

// Entries returns a copy of the journal in store order.
func (s *Service) Entries() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

// Get returns the entry with the given id.
func (s *Service) Get(id string) (entry.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.entries[i], true
	}
	return entry.Entry{}, false
}

// Add validates d and appends a new entry.
func (s *Service) Add(ctx context.Context, d entry.Draft) (entry.Entry, error) {
	if err := d.Validate(); err != nil {
		return entry.Entry{}, err
	}
	e := entry.New(s.newID(), d)

	s.mu.Lock()
	s.entries = append(s.entries, e)
	snapshot := slices.Clone(s.entries)
	s.mu.Unlock()

	s.logger().Debug("add entry", "id", e.ID, "date", e.Date)
	return e, s.save(ctx, snapshot)
}

// Update replaces the fields of entry id with d.
func (s *Service) Update(ctx context.Context, id string, d entry.Draft) (entry.Entry, error) {
	if err := d.Validate(); err != nil {
		return entry.Entry{}, err
	}
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return entry.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e := entry.New(id, d)
	s.entries[i] = e
	snapshot := slices.Clone(s.entries)
	s.mu.Unlock()

	s.logger().Debug("update entry", "id", id)
	return e, s.save(ctx, snapshot)
}

// Delete removes entry id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	snapshot := slices.Clone(s.entries)
	s.mu.Unlock()

	s.logger().Debug("delete entry", "id", id)
	return s.save(ctx, snapshot)
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Watch(ctx)
}

func (s *Service) save(ctx context.Context, entries []entry.Entry) error {
	if s.Store == nil {
		return errNoStore
	}
	if err := s.Store.Save(ctx, entries); err != nil {
		s.logger().Error("save journal", "err", err)
		return fmt.Errorf("app: save: %w", err)
	}
	return nil
}

func (s *Service) index(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

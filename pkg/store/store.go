// Package store persists the journal as one serialized array of entries
// under a single well-known key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/daybook/pkg/entry"
)

// Key is the well-known key the journal is stored under.
const Key = "daybook-entries"

// Drivers understood by Open.
const (
	DriverDiskv  = "diskv"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// ErrNotFound is returned by Load when nothing has been stored yet.
var ErrNotFound = errors.New("store: journal not found")

// Store is the persistence contract for the journal.
type Store interface {
	// Load returns the stored entries, or ErrNotFound.
	Load(ctx context.Context) ([]entry.Entry, error)
	// Save replaces the stored entries.
	Save(ctx context.Context, entries []entry.Entry) error
	// Watch streams change notifications until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Open creates the Store selected by cfg.
func Open(cfg Config) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch driver := strings.ToLower(cfg.Driver()); driver {
	case "", DriverDiskv:
		return OpenDiskv(cfg.BasePath())
	case DriverSQLite:
		return OpenSQLite(cfg.BasePath())
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown driver %q", driver)
	}
}

func encode(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("store: encode: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]entry.Entry, error) {
	var entries []entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("store: decode: %w", err)
	}
	return entries, nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daybook/pkg/entry"
)

// OpenDiskv returns a Store keeping the journal as a file in basePath.
func OpenDiskv(basePath string) (Store, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvStore{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// Files are read fresh each time so external edits are seen.
		CacheSizeMax: 0,
		TempDir:      filepath.Join(basePath, ".tmp"),
	}), basePath: basePath}, nil
}

type diskvStore struct {
	d        *diskv.Diskv
	basePath string
}

func (s *diskvStore) Load(ctx context.Context) ([]entry.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.d.Has(Key) {
		return nil, ErrNotFound
	}
	val, err := s.d.Read(Key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", Key, err)
	}
	return decode(val)
}

func (s *diskvStore) Save(ctx context.Context, entries []entry.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(entries)
	if err != nil {
		return err
	}
	if err := s.d.Write(Key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", Key, err)
	}
	return nil
}

func (s *diskvStore) Watch(ctx context.Context) (<-chan Event, error) {
	return watchFiles(ctx, s.basePath, func(name string) bool {
		return name == Key
	})
}

func (s *diskvStore) Close() error {
	return nil
}

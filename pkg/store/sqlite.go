package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/daybook/pkg/entry"

	_ "modernc.org/sqlite"
)

// SQLiteFile is the database file name inside the base path.
const SQLiteFile = "daybook.db"

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// OpenSQLite returns a Store keeping the journal in a kv table of a sqlite
// database under basePath.
func OpenSQLite(basePath string) (Store, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	path := filepath.Join(basePath, SQLiteFile)
	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping sqlite: %w", err)
	}
	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &sqliteStore{db: db, basePath: basePath}, nil
}

type sqliteStore struct {
	db       *sql.DB
	basePath string
}

func (s *sqliteStore) Load(ctx context.Context) ([]entry.Entry, error) {
	var val []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, Key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: query %s: %w", Key, err)
	}
	return decode(val)
}

func (s *sqliteStore) Save(ctx context.Context, entries []entry.Entry) error {
	data, err := encode(entries)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, Key, data)
	if err != nil {
		return fmt.Errorf("store: upsert %s: %w", Key, err)
	}
	return nil
}

func (s *sqliteStore) Watch(ctx context.Context) (<-chan Event, error) {
	return watchFiles(ctx, s.basePath, func(name string) bool {
		return strings.HasPrefix(name, SQLiteFile)
	})
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

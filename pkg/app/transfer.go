package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"tableflip.dev/daybook/pkg/entry"
)

// ErrInvalidImport is returned when an import file is not a JSON array of
// well-formed entries. Nothing is imported in that case.
var ErrInvalidImport = errors.New("app: invalid journal entries format")

// ImportResult reports what an import did.
type ImportResult struct {
	Added   int
	Skipped int
}

// ExportFileName is the default backup file name for the day of t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("daybook-backup-%s.json", t.Format(time.DateOnly))
}

// ExportName is the default backup file name for today.
func (s *Service) ExportName() string {
	return ExportFileName(s.now())
}

// Export writes the journal as a pretty-printed JSON array.
func (s *Service) Export(w io.Writer) error {
	entries := s.Entries()
	if entries == nil {
		entries = []entry.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("app: export: %w", err)
	}
	return nil
}

// Import reads a JSON array of entries from r. Every record must have the
// entry fields with the right JSON types, or the whole file is rejected.
// Records whose id already exists are skipped, never overwritten.
func (s *Service) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	incoming, err := ParseImport(r)
	if err != nil {
		return ImportResult{}, err
	}

	s.mu.Lock()
	known := make(map[string]bool, len(s.entries))
	for _, e := range s.entries {
		known[e.ID] = true
	}
	var res ImportResult
	for _, e := range incoming {
		if known[e.ID] {
			res.Skipped++
			continue
		}
		known[e.ID] = true
		s.entries = append(s.entries, e)
		res.Added++
	}
	snapshot := slices.Clone(s.entries)
	s.mu.Unlock()

	s.logger().Info("import", "added", res.Added, "skipped", res.Skipped)
	if res.Added == 0 {
		return res, nil
	}
	return res, s.save(ctx, snapshot)
}

// ParseImport decodes and validates an import file without touching the
// journal.
func ParseImport(r io.Reader) ([]entry.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("app: read import: %w", err)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: not a list of entries", ErrInvalidImport)
	}
	out := make([]entry.Entry, 0, len(records))
	for i, raw := range records {
		if err := checkRecord(raw); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidImport, i+1, err)
		}
		var e entry.Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidImport, i+1, err)
		}
		out = append(out, e)
	}
	return out, nil
}

type jsonKind int

const (
	kindString jsonKind = iota
	kindNumber
	kindStrings
)

var recordFields = []struct {
	name string
	kind jsonKind
}{
	{"id", kindString},
	{"imgUrl", kindString},
	{"rating", kindNumber},
	{"categories", kindStrings},
	{"date", kindString},
	{"description", kindString},
}

func checkRecord(raw json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return errors.New("not an object")
	}
	for _, f := range recordFields {
		v, ok := fields[f.name]
		if !ok {
			return fmt.Errorf("missing %s", f.name)
		}
		if !hasKind(v, f.kind) {
			return fmt.Errorf("%s has the wrong type", f.name)
		}
	}
	return nil
}

func hasKind(v json.RawMessage, kind jsonKind) bool {
	v = bytes.TrimSpace(v)
	switch kind {
	case kindString:
		var s string
		return len(v) > 0 && v[0] == '"' && json.Unmarshal(v, &s) == nil
	case kindNumber:
		var n float64
		return len(v) > 0 && (v[0] == '-' || (v[0] >= '0' && v[0] <= '9')) && json.Unmarshal(v, &n) == nil
	case kindStrings:
		var list []string
		return len(v) > 0 && v[0] == '[' && json.Unmarshal(v, &list) == nil
	}
	return false
}

package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/store"
)

func newService(t *testing.T, seed ...entry.Entry) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	if seed != nil {
		require.NoError(t, mem.Save(context.Background(), seed))
	}
	svc := New(mem)
	counter := 0
	svc.NewID = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	svc.Now = func() time.Time { return time.Date(2025, time.July, 1, 9, 30, 0, 0, time.UTC) }
	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	return svc, mem
}

func mk(id, date, desc string, cats ...string) entry.Entry {
	return entry.Entry{ID: id, ImgURL: "https://example.com/" + id + ".jpg", Rating: 4, Categories: cats, Date: date, Description: desc}
}

func draft(date string) entry.Draft {
	return entry.Draft{ImgURL: "https://example.com/x.jpg", Rating: 3, Categories: []string{"Test"}, Date: date, Description: "new"}
}

func TestLoadSeedsDefaults(t *testing.T) {
	svc, mem := newService(t)
	assert.Equal(t, entry.Defaults(), svc.Entries())

	stored, err := mem.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, len(entry.Defaults()))
}

func TestLoadEmptyArrayShowsDefaults(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Save(context.Background(), []entry.Entry{}))
	svc := New(mem)
	got, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entry.Defaults(), got)

	stored, err := mem.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestLoadFallsBackOnFailure(t *testing.T) {
	mem := store.NewMemory()
	mem.FailLoad = errors.New("quota exceeded")
	svc := New(mem)
	got, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrFallback)
	assert.Equal(t, entry.Defaults(), got)
}

func TestLoadWithoutStore(t *testing.T) {
	_, err := (&Service{}).Load(context.Background())
	assert.Error(t, err)
}

func TestProjection(t *testing.T) {
	svc, _ := newService(t,
		mk("a", "01/07/2025", "Morning run by the river", "Running"),
		mk("b", "02/07/2025", "Baked bread", "Cooking"),
		mk("c", "03/07/2025", "Evening RUN", "Outdoors"),
	)

	assert.Len(t, svc.Projection(""), 3)
	assert.Len(t, svc.Projection("  "), 3)

	ids := func(es []entry.Entry) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}
	assert.Equal(t, []string{"a", "c"}, ids(svc.Projection("run")))
	assert.Equal(t, []string{"b"}, ids(svc.Projection("COOK")))

	none := svc.Projection("swimming")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOrderedIsStable(t *testing.T) {
	in := []entry.Entry{
		mk("late", "10/09/2025", ""),
		mk("bad", "not a date", ""),
		mk("same-1", "05/08/2025", ""),
		mk("early", "29/02/2024", ""),
		mk("same-2", "05/08/2025", ""),
	}
	var got []string
	for _, e := range Ordered(in) {
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"early", "same-1", "same-2", "late", "bad"}, got)
	assert.Equal(t, "late", in[0].ID, "input must not be reordered")
}

func TestOnDay(t *testing.T) {
	es := []entry.Entry{mk("a", "05/08/2025", ""), mk("b", "06/08/2025", ""), mk("c", "05/08/2025", "")}
	got := OnDay(es, calendar.NewDate(2025, time.August, 5))
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[1].ID)
}

func TestInMonth(t *testing.T) {
	es := []entry.Entry{mk("a", "31/07/2025", ""), mk("b", "01/08/2025", ""), mk("c", "bad", ""), mk("d", "30/08/2025", "")}
	got := InMonth(es, calendar.MonthKey{Year: 2025, Month: time.August})
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "d", got[1].ID)
}

func TestAddUpdateDelete(t *testing.T) {
	svc, mem := newService(t, mk("a", "01/07/2025", "one", "X"))
	ctx := context.Background()

	added, err := svc.Add(ctx, draft("02/07/2025"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", added.ID)

	_, err = svc.Add(ctx, draft("31/02/2025"))
	var fe entry.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, entry.FieldDate)

	upd := draft("03/07/2025")
	upd.Description = "changed"
	got, err := svc.Update(ctx, "id-1", upd)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Description)
	e, ok := svc.Get("id-1")
	require.True(t, ok)
	assert.Equal(t, "03/07/2025", e.Date)

	_, err = svc.Update(ctx, "missing", upd)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "a"))
	assert.ErrorIs(t, svc.Delete(ctx, "a"), ErrNotFound)

	stored, err := mem.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "id-1", stored[0].ID)
}

func TestSaveFailureKeepsMemory(t *testing.T) {
	svc, mem := newService(t, mk("a", "01/07/2025", "one", "X"))
	mem.FailSave = errors.New("disk full")

	_, err := svc.Add(context.Background(), draft("02/07/2025"))
	assert.Error(t, err)
	assert.Len(t, svc.Entries(), 2)
}

func TestCategories(t *testing.T) {
	svc, _ := newService(t, mk("a", "01/07/2025", "", "B", "A"), mk("b", "02/07/2025", "", "A", "C"))
	assert.Equal(t, []string{"B", "A", "C"}, svc.Categories())
}

func TestExport(t *testing.T) {
	svc, _ := newService(t, mk("a", "01/07/2025", "one", "X"))
	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n  {\n    \"id\": \"a\","), buf.String())
	assert.Equal(t, "daybook-backup-2025-07-01.json", svc.ExportName())
}

func TestExportImportRoundTrip(t *testing.T) {
	src, _ := newService(t, mk("a", "01/07/2025", "one", "X"), mk("b", "02/07/2025", "two", "Y"))
	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))

	dst, _ := newService(t, mk("b", "09/09/2025", "local b", "Z"))
	res, err := dst.Import(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 1, Skipped: 1}, res)

	b, ok := dst.Get("b")
	require.True(t, ok)
	assert.Equal(t, "local b", b.Description, "existing entries are never overwritten")
}

func TestImportRejectsPartialCorruption(t *testing.T) {
	svc, mem := newService(t, mk("x", "01/07/2025", "keep", "X"))
	file := `[
	  {"id":"1","imgUrl":"https://e.com/1.jpg","rating":4,"categories":["A"],"date":"01/08/2025","description":"ok"},
	  {"id":"2","imgUrl":"https://e.com/2.jpg","rating":4,"categories":["A"],"date":"02/08/2025"},
	  {"id":"3","imgUrl":"https://e.com/3.jpg","rating":4,"categories":["A"],"date":"03/08/2025","description":"ok"}
	]`
	res, err := svc.Import(context.Background(), strings.NewReader(file))
	require.ErrorIs(t, err, ErrInvalidImport)
	assert.Zero(t, res.Added)
	assert.Len(t, svc.Entries(), 1)

	stored, err := mem.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestImportValidation(t *testing.T) {
	tests := map[string]string{
		"not an array":        `{"id":"1"}`,
		"not json":            `nope`,
		"null":                `null`,
		"blank null":          ` null `,
		"element not object":  `["x"]`,
		"rating as string":    `[{"id":"1","imgUrl":"u","rating":"4","categories":[],"date":"d","description":""}]`,
		"id as number":        `[{"id":1,"imgUrl":"u","rating":4,"categories":[],"date":"d","description":""}]`,
		"categories not list": `[{"id":"1","imgUrl":"u","rating":4,"categories":"A","date":"d","description":""}]`,
		"category not string": `[{"id":"1","imgUrl":"u","rating":4,"categories":[1],"date":"d","description":""}]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseImport(strings.NewReader(body))
			assert.ErrorIs(t, err, ErrInvalidImport)
		})
	}

	// Shape only: rating range and date format are not checked.
	got, err := ParseImport(strings.NewReader(`[{"id":"1","imgUrl":"u","rating":9,"categories":[],"date":"soon","description":""}]`))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = ParseImport(strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExportICS(t *testing.T) {
	svc, _ := newService(t, mk("a", "05/08/2025", "one", "X", "Y"), mk("bad", "never", "skip", "Z"))
	var buf bytes.Buffer
	require.NoError(t, svc.ExportICS(&buf))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250805")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20250806")
	assert.Contains(t, out, "UID:a@daybook")
}

func TestReport(t *testing.T) {
	svc, _ := newService(t,
		mk("a", "05/06/2025", "", "X"),
		mk("b", "20/06/2025", "", "X"),
		mk("c", "01/07/2025", "", "X"),
		mk("d", "01/01/2020", "", "X"),
	)
	svc.entries[1].Rating = 2

	res := svc.Report(calendar.NewDate(2025, time.July, 1), calendar.NewDate(2025, time.June, 1))
	require.Equal(t, 3, res.Total)
	require.Len(t, res.Sections, 2)
	assert.Equal(t, calendar.MonthKey{Year: 2025, Month: time.June}, res.Sections[0].Month)
	assert.InDelta(t, 3.0, res.Sections[0].Average, 1e-9)
	assert.InDelta(t, 10.0/3, res.Average, 1e-9)

	last := svc.LastDays(20)
	assert.Equal(t, 2, last.Total)
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	svc, mem := newService(t, mk("a", "01/07/2025", "one"))

	changed, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.False(t, changed, "reloading our own write is not a change")

	// Another process appends an entry.
	require.NoError(t, mem.Save(ctx, []entry.Entry{mk("a", "01/07/2025", "one"), mk("b", "02/07/2025", "two")}))
	changed, err = svc.Reload(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, svc.Entries(), 2)

	mem.FailLoad = errors.New("locked")
	changed, err = svc.Reload(ctx)
	assert.Error(t, err)
	assert.False(t, changed)
	assert.Len(t, svc.Entries(), 2, "a failed reload keeps the journal")
}

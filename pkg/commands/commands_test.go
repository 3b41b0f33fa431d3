package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)
	t.Setenv("DAYBOOK_DRIVER", "memory")
	t.Setenv("DAYBOOK_LOG_FILE", filepath.Join(dir, "daybook.log"))

	var buf bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	for _, name := range []string{"ui", "list", "add", "delete", "month", "report", "export", "import", "info", "key", "version", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	sub, _, err := cmd.Find([]string{"strike"})
	require.NoError(t, err)
	assert.Equal(t, "delete", sub.Name())
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestAddValidates(t *testing.T) {
	_, err := run(t, "add", "--category=food", "Tacos")
	var fe entry.FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, entry.FieldImage)

	_, err = run(t, "add", "--category=food", "--image=https://example.com/t.jpg", "--on=2025-07-04", "Tacos")
	assert.NoError(t, err)

	_, err = run(t, "add", "-d", "Tacos", "extra")
	assert.Error(t, err)
}

func TestDeleteUnknown(t *testing.T) {
	_, err := run(t, "delete", "does-not-exist")
	assert.ErrorIs(t, err, app.ErrNotFound)

	_, err = run(t, "delete")
	assert.Error(t, err)
}

func TestMonthArguments(t *testing.T) {
	_, err := run(t, "month", "2025-02")
	assert.NoError(t, err)

	_, err = run(t, "month", "February")
	assert.Error(t, err)
}

func TestReportWindow(t *testing.T) {
	_, err := run(t, "report", "--last", "2w")
	assert.NoError(t, err)

	_, err = run(t, "report", "--last", "soon")
	assert.Error(t, err)
}

func TestExportWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "journal.ics")
	_, err := run(t, "export", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")

	_, err = run(t, "export", "--format", "csv")
	assert.Error(t, err)
}

func TestImportNeedsFile(t *testing.T) {
	_, err := run(t, "import")
	assert.Error(t, err)

	_, err = run(t, "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

package locale

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/calendar"
)

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"de", "en", "fr"}, Supported())
}

func TestMonthTitles(t *testing.T) {
	k := calendar.MonthKey{Year: 2025, Month: time.August}
	assert.Equal(t, "August 2025", New("en").MonthTitle(k))
	assert.Equal(t, "août 2025", New("fr").MonthTitle(k))
	assert.Equal(t, "August 2025", New("de-CH").MonthTitle(k))
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, "January", New("not a tag!").Month(time.January))
	// French has no footer help and falls back to English.
	assert.Equal(t, New("en").T("footer.help", nil), New("fr").T("footer.help", nil))
	assert.Equal(t, "no.such.id", New("en").T("no.such.id", nil))
}

func TestWeekHeader(t *testing.T) {
	assert.Equal(t, []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, New("en").WeekHeader(time.Monday))
	assert.Equal(t, "di", New("fr").WeekHeader(time.Sunday)[0])
}

func TestPluralAndTemplates(t *testing.T) {
	en := New("en")
	assert.Equal(t, "1 match", en.N("search.matches", 1))
	assert.Equal(t, "3 matches", en.N("search.matches", 3))
	assert.Equal(t, "Tuesday 5 August 2025", en.LongDate(calendar.NewDate(2025, time.August, 5)))
	assert.Equal(t, "Dienstag, 5. August 2025", New("de").LongDate(calendar.NewDate(2025, time.August, 5)))
}

// Every message id in a translation must exist in English.
func TestLocaleIntegrity(t *testing.T) {
	read := func(name string) map[string]any {
		data, err := localeFS.ReadFile("locales/" + name)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}
	en := read("active.en.json")
	for _, lang := range []string{"fr", "de"} {
		for id := range read("active." + lang + ".json") {
			assert.Contains(t, en, id, "%s defines unknown id %s", lang, id)
		}
	}
}

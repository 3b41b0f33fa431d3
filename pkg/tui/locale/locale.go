// Package locale translates the labels of the calendar UI.
package locale

import (
	"embed"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"tableflip.dev/daybook/pkg/calendar"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	supported  []string
)

func loadBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error("read locales", "component", "locale", "err", err)
		return
	}
	for _, f := range files {
		name := f.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error("load locale", "component", "locale", "file", name, "err", err)
			continue
		}
		supported = append(supported, strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json"))
	}
	sort.Strings(supported)
}

// Supported lists the bundled language codes.
func Supported() []string {
	bundleOnce.Do(loadBundle)
	return append([]string(nil), supported...)
}

// Translator renders UI strings for one language. Missing messages fall back
// to English, then to the message id.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

// New returns a translator for lang, a BCP 47 tag such as "fr" or "de-CH".
// Unknown or malformed tags fall back to English.
func New(lang string) *Translator {
	bundleOnce.Do(loadBundle)
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Translator{
		lang:      tag.String(),
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}
}

// Lang is the requested language tag.
func (t *Translator) Lang() string {
	return t.lang
}

// T localizes id with optional template data.
func (t *Translator) T(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

// N localizes id choosing the plural form for count. Count is available to
// the template as .Count.
func (t *Translator) N(id string, count int) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return id
	}
	return msg
}

// Month is the full month name.
func (t *Translator) Month(m time.Month) string {
	return t.T("month."+strconv.Itoa(int(m)), nil)
}

// Weekday is the two letter weekday abbreviation.
func (t *Translator) Weekday(d time.Weekday) string {
	return t.T("weekday."+strconv.Itoa(int(d)), nil)
}

// MonthTitle renders "July 2025" in the translator's language.
func (t *Translator) MonthTitle(k calendar.MonthKey) string {
	return t.Month(k.Month) + " " + strconv.Itoa(k.Year)
}

// WeekHeader lists the weekday abbreviations starting at start.
func (t *Translator) WeekHeader(start time.Weekday) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = t.Weekday((start + time.Weekday(i)) % 7)
	}
	return out
}

// LongDate renders a date as "Tuesday 5 August 2025".
func (t *Translator) LongDate(d calendar.Date) string {
	return t.T("date.long", map[string]any{
		"Weekday": t.T("weekday.long."+strconv.Itoa(int(d.Weekday())), nil),
		"Day":     d.Day,
		"Month":   t.Month(d.Month),
		"Year":    d.Year,
	})
}

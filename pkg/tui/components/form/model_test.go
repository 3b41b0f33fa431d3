package form

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
)

var (
	ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
)

func newForm(id string, d entry.Draft) *Model {
	m := New(id, d, Options{Theme: theme.For(true), Categories: []string{"food", "friends", "travel"}})
	m.SetSize(80, 40)
	return m
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func TestFormReportsEveryInvalidField(t *testing.T) {
	m := newForm("", entry.NewDraft(calendar.NewDate(2025, time.July, 4)))
	require.False(t, m.Editing())

	m.Update(ctrlS)

	errs := m.Errors()
	assert.Len(t, errs, 3)
	assert.Equal(t, "Image URL is required", errs[entry.FieldImage])
	assert.Equal(t, "Description is required", errs[entry.FieldDescription])
	assert.Equal(t, "At least one category is required", errs[entry.FieldCategories])
	assert.Equal(t, entry.FieldCategories, m.Focused())

	view, _ := m.View()
	assert.Contains(t, ansi.Strip(view), "At least one category is required")
}

func TestFormCompletesCategories(t *testing.T) {
	m := newForm("", entry.NewDraft(calendar.NewDate(2025, time.July, 4)))
	m.Update(tab)
	m.Update(tab)
	require.Equal(t, entry.FieldCategories, m.Focused())

	typeText(m, "fo")
	assert.Equal(t, "food", m.Suggestion())
	m.Update(tab)
	assert.Equal(t, entry.FieldCategories, m.Focused(), "tab accepts the suggestion first")

	typeText(m, ", tr")
	assert.Equal(t, "travel", m.Suggestion())
	m.Update(tab)
	assert.Equal(t, []string{"food", "travel"}, m.Draft().Categories)

	m.Update(tab)
	assert.Equal(t, entry.FieldImage, m.Focused())
}

func TestFormSubmitsValidDraft(t *testing.T) {
	m := newForm("42", entry.Draft{
		Date:       "04/07/2025",
		Rating:     3.5,
		Categories: []string{"food"},
	})
	require.True(t, m.Editing())
	m.SetValue(entry.FieldImage, " https://example.com/picnic.jpg ")
	m.SetValue(entry.FieldDescription, "Picnic")

	_, cmd := m.Update(ctrlS)
	require.NotNil(t, cmd)
	submit, ok := cmd().(events.SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "42", submit.ID)
	assert.Equal(t, entry.Draft{
		ImgURL:      "https://example.com/picnic.jpg",
		Rating:      3.5,
		Categories:  []string{"food"},
		Date:        "04/07/2025",
		Description: "Picnic",
	}, submit.Draft)
	assert.Empty(t, m.Errors())
}

func TestFormRejectsBadRatingAndDate(t *testing.T) {
	m := newForm("", entry.Draft{
		Date:        "31/02/2025",
		Categories:  []string{"food"},
		ImgURL:      "https://example.com/x.png",
		Description: "x",
	})
	m.SetValue(entry.FieldRating, "lots")

	m.Update(ctrlS)
	assert.Equal(t, "Please enter a valid date (DD/MM/YYYY)", m.Errors()[entry.FieldDate])
	assert.Equal(t, "Rating must be between 0 and 5", m.Errors()[entry.FieldRating])
	assert.Equal(t, entry.FieldDate, m.Focused())
}

func TestFormEscapeCloses(t *testing.T) {
	m := newForm("", entry.Draft{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(events.CloseMsg)
	assert.True(t, ok)
}

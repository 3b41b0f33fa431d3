package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
)

func TestConfirmAnswers(t *testing.T) {
	cases := []struct {
		key  tea.KeyPressMsg
		want bool
		none bool
	}{
		{key: tea.KeyPressMsg{Text: "y", Code: 'y'}, want: true},
		{key: tea.KeyPressMsg{Text: "n", Code: 'n'}, want: false},
		{key: tea.KeyPressMsg{Code: tea.KeyEscape}, want: false},
		{key: tea.KeyPressMsg{Text: "x", Code: 'x'}, none: true},
	}
	for _, tc := range cases {
		m := New("confirm", "42", "Delete?", "Sure?", theme.For(true))
		m.SetSize(80, 24)
		_, cmd := m.Update(tc.key)
		if tc.none {
			if cmd != nil {
				t.Fatalf("%s: expected no answer", tc.key)
			}
			continue
		}
		if cmd == nil {
			t.Fatalf("%s: expected an answer", tc.key)
		}
		msg, ok := cmd().(events.ConfirmMsg)
		if !ok || msg.Confirmed != tc.want || msg.Subject != "42" {
			t.Fatalf("%s: got %#v", tc.key, msg)
		}
	}
}

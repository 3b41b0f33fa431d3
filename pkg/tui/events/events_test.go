package events

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
)

func TestCmdsWrapMessages(t *testing.T) {
	d := calendar.NewDate(2025, time.July, 4)
	if msg, ok := DayClickCmd("cal", d)().(DayClickMsg); !ok || msg.Date != d || msg.Component != "cal" {
		t.Fatalf("unexpected day click %#v", msg)
	}
	e := entry.Entry{ID: "7", Date: "04/07/2025"}
	if msg, ok := EntryClickCmd("cal", e)().(EntryClickMsg); !ok || msg.Entry.ID != "7" {
		t.Fatalf("unexpected entry click %#v", msg)
	}
	if msg, ok := SearchCmd("cal", "beach")().(SearchMsg); !ok || msg.Query != "beach" {
		t.Fatalf("unexpected search %#v", msg)
	}
	if msg, ok := CloseCmd("detail")().(CloseMsg); !ok || msg.Component != "detail" {
		t.Fatalf("unexpected close %#v", msg)
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]interface{ Describe() string }{
		`day:"04/07/2025"`:                  DayClickMsg{Date: calendar.NewDate(2025, time.July, 4)},
		`query:"sea"`:                       SearchMsg{Query: "sea"},
		`month:"2025-07"`:                   MonthChangeMsg{Month: calendar.MonthKey{Year: 2025, Month: time.July}},
		`action:"delete" entry:"3"`:         EntryChangeMsg{Action: ChangeDelete, Entry: entry.Entry{ID: "3"}},
		`action:"create" entry:"" err:"x"`:  EntryChangeMsg{Action: ChangeCreate, Err: errors.New("x")},
		`confirm:"3" yes:true`:              ConfirmMsg{Subject: "3", Confirmed: true},
	}
	for want, msg := range cases {
		if got := msg.Describe(); got != want {
			t.Errorf("Describe() = %s, want %s", got, want)
		}
	}
}

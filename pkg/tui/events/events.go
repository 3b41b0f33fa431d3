package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/entry"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// DayClickMsg is emitted when the user activates a day without entries, or
// asks to add an entry on the highlighted day.
type DayClickMsg struct {
	Component ComponentID
	Date      calendar.Date
}

// Describe renders the click in a human-friendly format for logs.
func (m DayClickMsg) Describe() string {
	return fmt.Sprintf(`day:%q`, m.Date)
}

// DayClickCmd wraps DayClickMsg in a tea.Cmd.
func DayClickCmd(component ComponentID, d calendar.Date) tea.Cmd {
	return func() tea.Msg {
		return DayClickMsg{Component: component, Date: d}
	}
}

// EntryClickMsg is emitted when the user activates a rendered entry.
type EntryClickMsg struct {
	Component ComponentID
	Entry     entry.Entry
}

// Describe renders the click in a human-friendly format for logs.
func (m EntryClickMsg) Describe() string {
	return fmt.Sprintf(`entry:%q date:%q`, m.Entry.ID, m.Entry.Date)
}

// EntryClickCmd wraps EntryClickMsg in a tea.Cmd.
func EntryClickCmd(component ComponentID, e entry.Entry) tea.Cmd {
	return func() tea.Msg {
		return EntryClickMsg{Component: component, Entry: e}
	}
}

// SearchMsg carries the settled search query.
type SearchMsg struct {
	Component ComponentID
	Query     string
}

// Describe renders the query for logs.
func (m SearchMsg) Describe() string {
	return fmt.Sprintf(`query:%q`, m.Query)
}

// SearchCmd wraps SearchMsg in a tea.Cmd.
func SearchCmd(component ComponentID, query string) tea.Cmd {
	return func() tea.Msg {
		return SearchMsg{Component: component, Query: query}
	}
}

// MonthChangeMsg announces that the focused month changed.
type MonthChangeMsg struct {
	Component ComponentID
	Month     calendar.MonthKey
}

// Describe renders the month for logs.
func (m MonthChangeMsg) Describe() string {
	return fmt.Sprintf(`month:%q`, m.Month)
}

// NavigateMissMsg reports a navigation target outside the loaded months.
type NavigateMissMsg struct {
	Component ComponentID
	Month     calendar.MonthKey
}

// Describe renders the target for logs.
func (m NavigateMissMsg) Describe() string {
	return fmt.Sprintf(`missed:%q`, m.Month)
}

// ChangeType enumerates supported change actions across components.
type ChangeType string

const (
	// ChangeCreate indicates a new entry was created.
	ChangeCreate ChangeType = "create"
	// ChangeUpdate indicates an existing entry changed.
	ChangeUpdate ChangeType = "update"
	// ChangeDelete indicates an entry was removed.
	ChangeDelete ChangeType = "delete"
)

// EntryChangeMsg announces that an entry was written by a component.
type EntryChangeMsg struct {
	Component ComponentID
	Action    ChangeType
	Entry     entry.Entry
	Err       error
}

// Describe renders the change for logs.
func (m EntryChangeMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`action:%q entry:%q err:%q`, m.Action, m.Entry.ID, m.Err)
	}
	return fmt.Sprintf(`action:%q entry:%q`, m.Action, m.Entry.ID)
}

// CloseMsg asks the host to dismiss the component that sent it.
type CloseMsg struct {
	Component ComponentID
}

// Describe renders the close request for logs.
func (m CloseMsg) Describe() string {
	return fmt.Sprintf(`close:%q`, m.Component)
}

// CloseCmd wraps CloseMsg in a tea.Cmd.
func CloseCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return CloseMsg{Component: component}
	}
}

// EditRequestMsg asks the host to open the form for an entry.
type EditRequestMsg struct {
	Component ComponentID
	Entry     entry.Entry
}

// Describe renders the request for logs.
func (m EditRequestMsg) Describe() string {
	return fmt.Sprintf(`edit:%q`, m.Entry.ID)
}

// DeleteRequestMsg asks the host to confirm deleting an entry.
type DeleteRequestMsg struct {
	Component ComponentID
	Entry     entry.Entry
}

// Describe renders the request for logs.
func (m DeleteRequestMsg) Describe() string {
	return fmt.Sprintf(`delete:%q`, m.Entry.ID)
}

// SubmitMsg carries a validated draft out of the entry form. ID is empty
// when the draft describes a new entry.
type SubmitMsg struct {
	Component ComponentID
	ID        string
	Draft     entry.Draft
}

// Describe renders the submission for logs.
func (m SubmitMsg) Describe() string {
	return fmt.Sprintf(`submit:%q date:%q`, m.ID, m.Draft.Date)
}

// ConfirmMsg reports the answer to a yes/no question.
type ConfirmMsg struct {
	Component ComponentID
	Subject   string
	Confirmed bool
}

// Describe renders the answer for logs.
func (m ConfirmMsg) Describe() string {
	return fmt.Sprintf(`confirm:%q yes:%t`, m.Subject, m.Confirmed)
}

// PromptMsg carries the value typed into a one line prompt.
type PromptMsg struct {
	Component ComponentID
	Value     string
}

// Describe renders the value for logs.
func (m PromptMsg) Describe() string {
	return fmt.Sprintf(`prompt:%q value:%q`, m.Component, m.Value)
}

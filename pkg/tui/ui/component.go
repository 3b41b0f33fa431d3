// Package ui holds the contracts shared by the root model and its dialogs.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Modal is a dialog drawn over the calendar. The root model routes keys to
// the top modal until it asks to close.
type Modal interface {
	Init() tea.Cmd
	Update(tea.Msg) (Modal, tea.Cmd)
	View() (string, *tea.Cursor)
	SetSize(width, height int)
}

package teaui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/tui/components/form"
	"tableflip.dev/daybook/pkg/tui/components/prompt"
	"tableflip.dev/daybook/pkg/tui/events"
)

func (m *Model) applySubmit(msg events.SubmitMsg) {
	f, ok := m.modal.(*form.Model)
	if !ok || !m.caps.Edit {
		return
	}
	var err error
	if msg.ID == "" {
		_, err = m.svc.Add(m.ctx, msg.Draft)
	} else {
		_, err = m.svc.Update(m.ctx, msg.ID, msg.Draft)
	}

	var fe entry.FieldErrors
	if errors.As(err, &fe) {
		f.SetErrors(err)
		return
	}
	m.closeModal()
	m.refresh()
	if err != nil {
		m.reportErr(err)
		return
	}
	m.setStatus(m.tr.T("status.saved", nil))
}

func (m *Model) applyDelete(id string) {
	if !m.caps.Edit {
		return
	}
	err := m.svc.Delete(m.ctx, id)
	if m.detail != nil {
		if cur, ok := m.detail.Current(); ok && cur.ID == id {
			m.closeDetail()
		}
	}
	m.refresh()
	if err != nil && !errors.Is(err, app.ErrNotFound) {
		m.reportErr(err)
		return
	}
	m.setStatus(m.tr.T("status.deleted", nil))
}

func (m *Model) applyPrompt(msg events.PromptMsg) {
	p, ok := m.modal.(*prompt.Model)
	if !ok || !m.caps.Transfer {
		return
	}
	path, err := homedir.Expand(strings.TrimSpace(msg.Value))
	if err != nil {
		p.SetError(err.Error())
		return
	}
	switch msg.Component {
	case importID:
		m.importFrom(p, path)
	case exportID:
		m.exportTo(p, path)
	}
}

func (m *Model) importFrom(p *prompt.Model, path string) {
	f, err := os.Open(path)
	if err != nil {
		p.SetError(err.Error())
		return
	}
	defer f.Close()

	res, err := m.svc.Import(m.ctx, f)
	if errors.Is(err, app.ErrInvalidImport) {
		p.SetError(err.Error())
		return
	}
	m.closeModal()
	m.refresh()
	if err != nil {
		m.reportErr(err)
		return
	}
	m.setStatus(m.tr.T("status.imported", map[string]any{"Added": res.Added, "Skipped": res.Skipped}))
}

func (m *Model) exportTo(p *prompt.Model, path string) {
	if err := writeExport(m.svc, path); err != nil {
		m.logger.Warn("export", "path", path, "err", err)
		p.SetError(err.Error())
		return
	}
	m.closeModal()
	m.setStatus(m.tr.T("status.exported", map[string]any{"Path": path}))
}

// writeExport writes the journal to path, as iCalendar for .ics files and as
// a JSON backup otherwise.
func writeExport(svc *app.Service, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".ics") {
		err = svc.ExportICS(f)
	} else {
		err = svc.Export(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

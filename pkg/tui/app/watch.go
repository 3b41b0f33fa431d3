package teaui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"
	"github.com/robfig/cron/v3"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

type reloadedMsg struct {
	event   store.Event
	changed bool
	err     error
}

// clockMsg is sent at midnight so the calendar follows the current day.
type clockMsg struct {
	now time.Time
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func reloadCmd(ctx context.Context, svc *app.Service, ev store.Event) tea.Cmd {
	return func() tea.Msg {
		changed, err := svc.Reload(ctx)
		return reloadedMsg{event: ev, changed: changed, err: err}
	}
}

// handleReload applies a reload triggered by the watcher. Our own saves
// reload to an identical journal and stay quiet.
func (m *Model) handleReload(msg reloadedMsg) {
	if msg.err != nil {
		m.logger.Warn("reload", "event", msg.event.Type.String(), "err", msg.err)
		return
	}
	if !msg.changed {
		return
	}
	m.logger.Info("journal changed on disk", "event", msg.event.Type.String(), "name", msg.event.Name)
	m.refresh()
	m.setStatus(m.tr.T("status.reloaded", nil))
}

// ErrNotTerminal is returned by Run when stdout is not a terminal.
var ErrNotTerminal = errors.New("teaui: stdout is not a terminal")

// Run starts the full-screen calendar and blocks until it exits.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}
	m, err := New(ctx, svc, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	now := m.opts.Now
	clock := cron.New()
	if _, err := clock.AddFunc("@midnight", func() { p.Send(clockMsg{now: now()}) }); err != nil {
		return fmt.Errorf("teaui: schedule clock: %w", err)
	}
	clock.Start()
	defer clock.Stop()

	_, err = p.Run()
	m.stopWatch()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Package ui starts the full screen calendar.
package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/timeutil"
	teaui "tableflip.dev/daybook/pkg/tui/app"
)

// UI runs the calendar over a loaded service.
type UI struct {
	Service  *app.Service
	Settings *store.Settings
	ReadOnly bool
	// NoTransfer hides import and export.
	NoTransfer bool
	// Pivot overrides the configured pivot when set.
	Pivot calendar.Date
	// LoadErr is the error the journal was loaded with.
	LoadErr error
	Logger  *slog.Logger
}

// Do blocks until the calendar exits.
func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not open the calendar, no journal")
	}
	opts, err := u.options()
	if err != nil {
		return err
	}
	return teaui.Run(ctx, u.Service, opts)
}

func (u *UI) options() (teaui.Options, error) {
	opts := teaui.Options{
		Capabilities: teaui.Capabilities{
			Edit:     !u.ReadOnly,
			Transfer: !u.ReadOnly && !u.NoTransfer,
		},
		Pivot:   u.Pivot,
		LoadErr: u.LoadErr,
		Logger:  u.Logger,
	}
	s := u.Settings
	if s == nil {
		return opts, nil
	}
	weekStart, err := calendar.ParseWeekStart(s.WeekStart)
	if err != nil {
		return opts, err
	}
	opts.Buffer = s.Buffer
	opts.LookAhead = s.LookAhead
	opts.MinWindow = s.MinWindow
	opts.WeekStart = weekStart
	opts.Announce = s.Announce
	opts.Locale = s.Locale
	if opts.Pivot.IsZero() && s.Pivot != "" && s.Pivot != "today" {
		if opts.Pivot, err = timeutil.ParseDay(s.Pivot, time.Now()); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

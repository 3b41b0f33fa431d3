package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

// journal is the configuration, log and store shared by every command.
type journal struct {
	debug bool

	settings *store.Settings
	store    store.Store
	svc      *app.Service
	loadErr  error
	logs     io.Closer
}

func (j *journal) setup(cmd *cobra.Command, _ []string) error {
	settings, err := store.LoadConfig()
	if err != nil {
		return err
	}
	j.settings = settings

	logs, err := setupLogging(settings, j.debug)
	if err != nil {
		_, _ = fmt.Fprintf(color.Error, "warning: logging disabled: %v\n", err)
	}
	j.logs = logs
	slog.Debug("config loaded", "component", "commands", "driver", settings.Driver(), "path", settings.BasePath())
	return nil
}

// open loads the journal. Commands that write refuse to run on the sample
// journal a failing store falls back to.
func (j *journal) open(ctx context.Context, writes bool) (*app.Service, error) {
	if j.svc != nil {
		return j.svc, nil
	}
	if j.settings == nil {
		return nil, errors.New("configuration not loaded")
	}
	st, err := store.Open(j.settings)
	if err != nil {
		return nil, err
	}
	svc := app.New(st)
	if _, err := svc.Load(ctx); err != nil {
		if !errors.Is(err, app.ErrFallback) || writes {
			_ = st.Close()
			return nil, err
		}
		j.loadErr = err
		_, _ = fmt.Fprintf(color.Error, "warning: %v\n", err)
	}
	j.store = st
	j.svc = svc
	return svc, nil
}

func (j *journal) close(_ *cobra.Command, _ []string) {
	if j.store != nil {
		if err := j.store.Close(); err != nil {
			slog.Warn("close store", "component", "commands", "err", err)
		}
		j.store = nil
		j.svc = nil
	}
	if j.logs != nil {
		_ = j.logs.Close()
		j.logs = nil
	}
}

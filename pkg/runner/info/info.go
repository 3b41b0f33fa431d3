// Package info describes the configured journal.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui/locale"
)

type Info struct {
	Settings *store.Settings
	Service  *app.Service
	LoadErr  error
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "DAYBOOK_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "DAYBOOK_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		if n.Settings, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	s := n.Settings
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(faint.Sprint("path"), s.BasePath())
	tbl.AddRow(faint.Sprint("driver"), s.Driver())
	tbl.AddRow(faint.Sprint("locale"), fmt.Sprintf("%s (bundled: %s)", s.Locale, strings.Join(locale.Supported(), ", ")))
	tbl.AddRow(faint.Sprint("week start"), s.WeekStart)
	tbl.AddRow(faint.Sprint("months"), fmt.Sprintf("%d either side of %s", s.Buffer, s.Pivot))
	if n.Service != nil {
		tbl.AddRow(faint.Sprint("entries"), len(n.Service.Entries()))
		if cats := n.Service.Categories(); len(cats) > 0 {
			tbl.AddRow(faint.Sprint("categories"), strings.Join(cats, ", "))
		}
	}
	if n.LoadErr != nil {
		tbl.AddRow(color.New(color.FgRed).Sprint("warning"), n.LoadErr.Error())
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}

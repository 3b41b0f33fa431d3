// Package transfer exports and imports journal backups.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
)

// Formats understood by Export.
const (
	FormatJSON = "json"
	FormatICS  = "ics"
)

// Export writes the journal to Path, or to Out when Path is "-".
type Export struct {
	Path    string
	Format  string
	Service *app.Service
	Out     io.Writer
	// Status receives the confirmation line. Defaults to stderr.
	Status io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no journal")
	}
	if n.Path == "" {
		n.Path = n.Service.ExportName()
		if n.Format == FormatICS {
			n.Path = n.Path[:len(n.Path)-len(".json")] + ".ics"
		}
	}

	if n.Path == "-" {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		return n.write(out)
	}

	f, err := os.Create(n.Path)
	if err != nil {
		return err
	}
	err = n.write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	status := n.Status
	if status == nil {
		status = color.Error
	}
	_, _ = fmt.Fprintf(status, "exported %d entries to %s\n", len(n.Service.Entries()), n.Path)
	return nil
}

func (n *Export) write(w io.Writer) error {
	if n.Format == FormatICS {
		return n.Service.ExportICS(w)
	}
	return n.Service.Export(w)
}

// Import merges the backup at Path into the journal.
type Import struct {
	Path    string
	Service *app.Service
	Out     io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	var r io.Reader = os.Stdin
	if n.Path != "-" {
		f, err := os.Open(n.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	res, err := n.Service.Import(ctx, r)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "imported %d, skipped %d\n", res.Added, res.Skipped)
	return nil
}

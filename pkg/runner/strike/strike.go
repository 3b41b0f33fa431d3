// Package strike deletes journal entries.
package strike

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
)

// Strike removes the entry with ID.
type Strike struct {
	ID      string
	Quiet   bool
	Service *app.Service
	Out     io.Writer
}

func (n *Strike) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	e, ok := n.Service.Get(n.ID)
	if !ok {
		return app.ErrNotFound
	}
	if err := n.Service.Delete(ctx, n.ID); err != nil {
		return err
	}
	if n.Quiet {
		return nil
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Title("Deleted")
	pp.Entry(e)
	return nil
}

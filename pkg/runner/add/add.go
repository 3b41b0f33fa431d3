// Package add records new journal entries.
package add

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/printers"
)

// Add validates Draft and appends it to the journal.
type Add struct {
	Draft   entry.Draft
	Output  string
	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	e, err := n.Service.Add(ctx, n.Draft)
	if err != nil {
		return err
	}

	if n.Output == "json" {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Title("Added")
	pp.Entry(e)
	return nil
}

// Package get lists journal entries.
package get

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

// Get prints the entries matching Query, newest first.
type Get struct {
	ShowID  bool
	Query   string
	Output  string
	Service *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	entries := app.Ordered(n.Service.Projection(n.Query))
	if entries == nil {
		entries = []entry.Entry{}
	}

	switch n.Output {
	case "json":
		b, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
	default:
		pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
		title := "Journal"
		if n.Query != "" {
			title = fmt.Sprintf("Matching %q", n.Query)
		}
		pp.TitleWithCount(title, len(entries))
		pp.Entries(entries...)
	}
	return nil
}

// Package report summarizes the journal over a window of days.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/timeutil"
)

// Report prints the entries of the last Days days, or of Month when set.
type Report struct {
	Days    int
	Month   calendar.MonthKey
	Output  string
	Service *app.Service
	Out     io.Writer
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	var (
		result app.ReportResult
		label  string
	)
	if n.Month != (calendar.MonthKey{}) {
		result = n.Service.Report(n.Month.First(), n.Month.Last())
		label = n.Month.String()
	} else {
		days := max(1, n.Days)
		result = n.Service.LastDays(days)
		label = timeutil.FormatWindow(days)
	}

	if n.Output == "json" {
		b, err := json.Marshal(result)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Report(result, label)
	return nil
}

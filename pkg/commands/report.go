package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/report"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addReport(topLevel *cobra.Command, j *journal) {
	ro := &options.ReportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "summarize recent entries by month",
		Long: `Report lists the entries dated within a window ending today, grouped by
month with their average rating.

Examples:
  daybook report
  daybook report --last 2w
  daybook report --month 2025-06`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := report.Report{}
			if ro.Month != "" {
				month, err := timeutil.ParseMonth(ro.Month, time.Now())
				if err != nil {
					return oo.HandleError(err)
				}
				r.Month = month
			} else {
				days, _, err := timeutil.ParseWindow(ro.Last)
				if err != nil {
					return oo.HandleError(err)
				}
				r.Days = days
			}
			svc, err := j.open(cmd.Context(), false)
			if err != nil {
				return oo.HandleError(err)
			}
			r.Service = svc
			if oo.JSON {
				r.Output = "json"
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddReportArgs(cmd, ro)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

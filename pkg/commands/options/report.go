package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/timeutil"
)

// ReportOptions choose the report window.
type ReportOptions struct {
	Last  string
	Month string
}

func AddReportArgs(cmd *cobra.Command, o *ReportOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		"Window to include, for example 3d, 2w or 1w3d.")
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		"Report on one month instead, YYYY-MM or an offset such as -1.")
}

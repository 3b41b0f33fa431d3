package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions configure the full screen calendar.
type InteractiveOptions struct {
	ReadOnly   bool
	NoTransfer bool
	Pivot      string
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVar(&o.ReadOnly, "read-only", false,
		`Browse without adding, editing or deleting entries.`)
	cmd.Flags().BoolVar(&o.NoTransfer, "no-transfer", false,
		`Disable importing and exporting from the calendar.`)
	cmd.Flags().StringVar(&o.Pivot, "pivot", "",
		`Centre the calendar on this day instead of the configured pivot, example: --pivot=2024-06-01.`)
}

package options

import (
	"github.com/spf13/cobra"
)

// OnOptions selects a day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "today",
		`Specify a date, example: --on="28/02/2020", --on="2020-02-28" or --on=yesterday.`)
}

package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	Yes    bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

func AddConfirmArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not print the deleted entry.")
}

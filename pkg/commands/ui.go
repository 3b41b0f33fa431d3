package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/ui"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addUI(topLevel *cobra.Command, j *journal) {
	uo := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the scrolling calendar",
		Example: `
daybook ui
daybook ui --read-only
daybook ui --pivot=2024-06-01
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, j, uo)
		},
	}

	options.InteractiveArgs(cmd, uo)
	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, j *journal, uo *options.InteractiveOptions) error {
	var pivot calendar.Date
	if uo.Pivot != "" {
		var err error
		if pivot, err = timeutil.ParseDay(uo.Pivot, time.Now()); err != nil {
			return err
		}
	}
	svc, err := j.open(cmd.Context(), false)
	if err != nil {
		return err
	}
	u := ui.UI{
		Service:    svc,
		Settings:   j.settings,
		ReadOnly:   uo.ReadOnly,
		NoTransfer: uo.NoTransfer,
		Pivot:      pivot,
		LoadErr:    j.loadErr,
	}
	return u.Do(cmd.Context())
}

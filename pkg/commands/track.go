package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/runner/track"
	"tableflip.dev/daybook/pkg/timeutil"
)

func addTrack(topLevel *cobra.Command, j *journal) {
	months := 1

	cmd := &cobra.Command{
		Use:     "month [YYYY-MM|-N|+N]",
		Aliases: []string{"track", "cal"},
		Short:   "print a month of the journal",
		Example: `
daybook month
daybook month 2024-12
daybook month -1 --months 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expects at most one month")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			month, err := timeutil.ParseMonth(arg, now)
			if err != nil {
				return err
			}
			svc, err := j.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			weekStart, err := calendar.ParseWeekStart(j.settings.WeekStart)
			if err != nil {
				return err
			}
			t := track.Track{
				Month:     month,
				Months:    months,
				WeekStart: weekStart,
				Today:     calendar.DateOf(now),
				Service:   svc,
			}
			return t.Do(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&months, "months", "n", 1, "Number of months to print.")
	topLevel.AddCommand(cmd)
}

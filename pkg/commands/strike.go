package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/strike"
)

func addStrike(topLevel *cobra.Command, j *journal) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm", "strike"},
		Short:   "delete an entry",
		Example: `
daybook list --show-id
daybook delete 3f2b9c4e-8d7a-4a51-9b0e-2c1d5e6f7a80
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one entry id")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return entryCompletions(cmd, j, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := j.open(cmd.Context(), true)
			if err != nil {
				return oo.HandleError(err)
			}
			s := strike.Strike{
				ID:      args[0],
				Quiet:   io.Yes,
				Service: svc,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

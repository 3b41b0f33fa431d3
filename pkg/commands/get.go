package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/get"
)

func addGet(topLevel *cobra.Command, j *journal) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"get", "ls"},
		Short:   "list entries, newest first",
		Long: base.Wrap80("List every entry, or those whose description or categories " +
			"contain the query. Matching ignores case."),
		Example: `
daybook list
daybook list beach
daybook list --json food
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := j.open(cmd.Context(), false)
			if err != nil {
				return oo.HandleError(err)
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Query:   strings.Join(args, " "),
				Service: svc,
			}
			if oo.JSON {
				s.Output = "json"
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

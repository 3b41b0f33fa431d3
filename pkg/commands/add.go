package commands

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, j *journal) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: "add an entry",
		Long: base.Wrap80("Add an entry. Every entry needs a description, an image URL and " +
			"at least one category; the date defaults to today and the rating to 5."),
		Example: `
daybook add --category=food --image=https://example.com/tacos.jpg Tacos with friends
daybook add --on=yesterday -r 3 -c travel,rain --image=https://example.com/r.jpg "Rainy train ride"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if ao.Description == "" {
				ao.Description = strings.Join(args, " ")
			} else if len(args) > 0 {
				return errors.New("description given twice, use the flag or the arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ao.Draft(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := j.open(cmd.Context(), true)
			if err != nil {
				return oo.HandleError(err)
			}
			s := add.Add{
				Draft:   d,
				Service: svc,
			}
			if oo.JSON {
				s.Output = "json"
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, ao)
	base.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(cmd, j, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}

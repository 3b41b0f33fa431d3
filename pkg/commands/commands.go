// Package commands builds the daybook command line.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {
	j := &journal{}
	uo := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("A scrolling calendar journal for the terminal. Run without a command to open the calendar."),
		Long: base.Wrap80("daybook keeps a journal of rated, categorized days. The calendar " +
			"scrolls through the months around today; the other commands read and " +
			"change the same journal from scripts."),
		SilenceUsage:      true,
		PersistentPreRunE: j.setup,
		PersistentPostRun: j.close,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, j, uo)
		},
	}

	cmd.PersistentFlags().BoolVar(&j.debug, "debug", false,
		"Log at debug level, with source locations.")
	cmd.PersistentFlags().String("driver", "",
		`Storage backend, one of "diskv", "sqlite" or "memory".`)
	cmd.PersistentFlags().String("path", "",
		"Directory the journal is stored in.")
	cmd.PersistentFlags().String("locale", "",
		"Language of the calendar labels, for example en, fr or de.")
	for _, name := range []string{"driver", "path", "locale"} {
		_ = viper.BindPFlag(name, cmd.PersistentFlags().Lookup(name))
	}
	options.InteractiveArgs(cmd, uo)

	AddCommands(cmd, j)
	return cmd
}

func AddCommands(topLevel *cobra.Command, j *journal) {
	addUI(topLevel, j)
	addGet(topLevel, j)
	addAdd(topLevel, j)
	addStrike(topLevel, j)
	addTrack(topLevel, j)
	addReport(topLevel, j)
	addExport(topLevel, j)
	addImport(topLevel, j)
	addInfo(topLevel, j)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

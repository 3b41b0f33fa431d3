package commands

import (
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command, j *journal) {
	to := &options.TransferOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write a backup of the journal",
		Long: base.Wrap80("Write the journal as a JSON backup that import reads back, " +
			"or as an iCalendar file with one all-day event per entry."),
		Example: `
daybook export
daybook export --out journal.ics
daybook export --format json --out - | jq length
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := to.ResolveFormat()
			if err != nil {
				return err
			}
			svc, err := j.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			e := transfer.Export{
				Path:    to.Out,
				Format:  format,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return e.Do(cmd.Context())
		},
	}

	options.AddExportArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command, j *journal) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "merge a JSON backup into the journal",
		Long: base.Wrap80("Merge the entries of a JSON backup into the journal. Entries " +
			"whose id already exists are skipped. A malformed file is rejected " +
			"as a whole. Use - to read standard input."),
		Example: `
daybook import daybook-backup-2025-07-01.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := j.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			i := transfer.Import{
				Path:    args[0],
				Service: svc,
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

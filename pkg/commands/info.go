package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, j *journal) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "show the configuration and the journal it points at",
		Example: `
daybook info
DAYBOOK_DRIVER=sqlite daybook info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := j.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			i := info.Info{
				Settings: j.settings,
				Service:  svc,
				LoadErr:  j.loadErr,
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

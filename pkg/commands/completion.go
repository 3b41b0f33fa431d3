package commands

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(daybook completion bash)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daybook completion bash)
`,
		ValidArgs:        []string{"bash", "zsh", "fish"},
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRun: func(*cobra.Command, []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			switch shell {
			case "bash":
				return topLevel.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return topLevel.GenZshCompletion(os.Stdout)
			case "fish":
				return topLevel.GenFishCompletion(os.Stdout, true)
			default:
				return errors.New("unsupported shell " + shell)
			}
		},
	}
	// cobra's generated completion command would clash with this one.
	topLevel.CompletionOptions.DisableDefaultCmd = true

	topLevel.AddCommand(cmd)
}

func entryCompletions(cmd *cobra.Command, j *journal, toComplete string) []string {
	if j.settings == nil && j.setup(cmd, nil) != nil {
		return nil
	}
	svc, err := j.open(cmd.Context(), false)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range svc.Entries() {
		if strings.HasPrefix(e.ID, toComplete) {
			out = append(out, e.ID+"\t"+e.Date+" "+e.Description)
		}
	}
	return out
}

func categoryCompletions(cmd *cobra.Command, j *journal, toComplete string) []string {
	if j.settings == nil && j.setup(cmd, nil) != nil {
		return nil
	}
	svc, err := j.open(cmd.Context(), false)
	if err != nil {
		return nil
	}
	var out []string
	for _, c := range svc.Categories() {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(toComplete)) {
			out = append(out, c)
		}
	}
	return out
}

package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for composerviz to stdout.

Source it for the current session, for example:

  source <(composerviz completion bash)
  composerviz completion fish | source

or write it to your shell's completion directory to keep it.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			generate := map[string]func() error{
				"bash":       func() error { return root.GenBashCompletionV2(w, true) },
				"zsh":        func() error { return root.GenZshCompletion(w) },
				"fish":       func() error { return root.GenFishCompletion(w, true) },
				"powershell": func() error { return root.GenPowerShellCompletionWithDesc(w) },
			}
			return generate[args[0]]()
		},
	}

	return cmd
}

package cli

import "github.com/spf13/cobra"

// completionCommand prints a shell completion script to stdout.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for wordcast and print it to stdout.

  $ source <(wordcast completion bash)
  $ wordcast completion zsh > "${fpath[1]}/_wordcast"
  $ wordcast completion fish > ~/.config/fish/completions/wordcast.fish
  PS> wordcast completion powershell | Out-String | Invoke-Expression

Completions cover subcommands and flags, including the --format values
and the font families from "wordcast fonts".`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

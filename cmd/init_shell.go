package cmd

import (
	"fmt"

	"github.com/chris-regnier/sunspot/internal/shell"
	"github.com/spf13/cobra"
)

var initShellCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Output shell integration script",
	Long: `Output shell integration script for eval.

Generates shell-specific initialization code that sets up:
- Shell completions
- Prompt hook exporting SUNSPOT_TODAY and SUNSPOT_MOOD
- Today's mood icon in front of the prompt (SUNSPOT_PROMPT=off to disable)
- sunspot_prompt_info helper function

Supported shells: bash, zsh`,
	Example: `  # Add to ~/.bashrc
  eval "$(sunspot init bash)"

  # Add to ~/.zshrc
  eval "$(sunspot init zsh)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return shell.WriteBashInit(cmd.OutOrStdout())
		case "zsh":
			return shell.WriteZshInit(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q (supported: bash, zsh)", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(initShellCmd)
}

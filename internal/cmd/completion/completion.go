// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

type shell struct {
	name    string
	short   string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:  "bash",
		short: "Generate bash completion script",
		install: `  # Load in current session
  source <(ubb completion bash)

  # Install permanently (Linux)
  ubb completion bash | sudo tee /etc/bash_completion.d/ubb > /dev/null

  # Install permanently (macOS with Homebrew)
  ubb completion bash > $(brew --prefix)/etc/bash_completion.d/ubb`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name:  "zsh",
		short: "Generate zsh completion script",
		install: `  # Enable completion if not already done
  echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Install for every new session
  ubb completion zsh > "${fpath[1]}/_ubb"`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name:  "fish",
		short: "Generate fish completion script",
		install: `  # Load in current session
  ubb completion fish | source

  # Install for every new session
  ubb completion fish > ~/.config/fish/completions/ubb.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name:  "powershell",
		short: "Generate PowerShell completion script",
		install: `  # Load in current session
  ubb completion powershell | Out-String | Invoke-Expression

  # Install for every new session
  ubb completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for ubb.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, sh := range shells {
		cmd.AddCommand(newCmdShell(sh))
	}

	return cmd
}

func newCmdShell(sh shell) *cobra.Command {
	return &cobra.Command{
		Use:                   sh.name,
		Short:                 sh.short,
		Long:                  sh.short + " for ubb.",
		Example:               sh.install,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

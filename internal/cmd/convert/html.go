// Package convert provides the commands that convert UBB text.
package convert

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/ubb-cli/pkg/richtext"
	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

type htmlOptions struct {
	*cmdutil.Options
	sanitize bool
	write    string
}

// NewCmdHTML creates the html command.
func NewCmdHTML() *cobra.Command {
	opts := &htmlOptions{}

	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Convert UBB to HTML",
		Long: `Convert UBB markup to an HTML fragment.

Malformed markup never fails: unclosed tags are closed, badly nested tags are
closed and reopened, and stray close tags are dropped. Use --verbose to list
each repair.`,
		Example: `  # Convert a file
  ubb html post.ubb

  # Convert stdin and strip anything unsafe
  echo '[bold]hi[/bold]' | ubb html --sanitize

  # Write the result to a file
  ubb html post.ubb --write post.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = cmdutil.OptionsFromCmd(cmd)
			return runHTML(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Filter the HTML through a safe-content policy")
	cmd.Flags().StringVarP(&opts.write, "write", "w", "", "Write the result to a file instead of stdout")

	return cmd
}

func runHTML(opts *htmlOptions, args []string) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	renderer, err := opts.Renderer(cfg)
	if err != nil {
		return err
	}

	input, err := cmdutil.ReadInput(args, opts.Stdin)
	if err != nil {
		return err
	}

	result := ubb.New(cfg.Settings()).ToHTML(input)
	output := result.Output
	if opts.sanitize {
		output = richtext.Sanitize(output)
	}

	return opts.Emit(renderer, opts.write, output, result.Warnings)
}

package convert

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/ubb-cli/pkg/richtext"
	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

type markdownOptions struct {
	*cmdutil.Options
	write string
}

// NewCmdMarkdown creates the markdown command.
func NewCmdMarkdown() *cobra.Command {
	opts := &markdownOptions{}

	cmd := &cobra.Command{
		Use:   "markdown [file]",
		Short: "Convert UBB to Markdown",
		Long: `Convert UBB markup to Markdown by way of HTML.

Colors and media placeholders have no Markdown form and are reduced to their
text.`,
		Example: `  # Convert a file
  ubb markdown post.ubb

  # Convert stdin
  echo '[bold]hi[/bold]' | ubb markdown`,
		Aliases: []string{"md"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = cmdutil.OptionsFromCmd(cmd)
			return runMarkdown(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.write, "write", "w", "", "Write the result to a file instead of stdout")

	return cmd
}

func runMarkdown(opts *markdownOptions, args []string) error {
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
	markdown, err := richtext.MarkdownFromHTML(result.Output)
	if err != nil {
		return err
	}

	return opts.Emit(renderer, opts.write, markdown, result.Warnings)
}

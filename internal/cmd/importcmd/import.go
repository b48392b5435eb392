// Package importcmd provides the commands that turn rich content into UBB.
package importcmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/ubb-cli/pkg/richtext"
	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

type importOptions struct {
	*cmdutil.Options
	write string
}

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert rich content to UBB",
		Long: `Commands for turning HTML or Markdown into UBB markup.

Bold, italic, colors, links, images, quotes and lists are kept. Block
boundaries become line breaks. Everything else is reduced to its text.`,
	}

	cmd.AddCommand(NewCmdHTML())
	cmd.AddCommand(NewCmdMarkdown())

	return cmd
}

// NewCmdHTML creates the import html command.
func NewCmdHTML() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "html [file]",
		Short: "Convert HTML to UBB",
		Example: `  # Import a saved page fragment
  ubb import html post.html

  # Import from stdin
  echo '<b>hi</b><br>there' | ubb import html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = cmdutil.OptionsFromCmd(cmd)
			return runImportHTML(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.write, "write", "w", "", "Write the result to a file instead of stdout")

	return cmd
}

// NewCmdMarkdown creates the import markdown command.
func NewCmdMarkdown() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:     "markdown [file]",
		Aliases: []string{"md"},
		Short:   "Convert Markdown to UBB",
		Example: `  # Import a Markdown file
  ubb import markdown README.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = cmdutil.OptionsFromCmd(cmd)
			return runImportMarkdown(opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.write, "write", "w", "", "Write the result to a file instead of stdout")

	return cmd
}

func runImportHTML(opts *importOptions, args []string) error {
	return runImport(opts, args, func(input string, s ubb.Settings) (*ubb.RichNode, error) {
		return richtext.FromHTML(strings.NewReader(input), s)
	})
}

func runImportMarkdown(opts *importOptions, args []string) error {
	return runImport(opts, args, func(input string, s ubb.Settings) (*ubb.RichNode, error) {
		return richtext.FromMarkdown([]byte(input), s), nil
	})
}

func runImport(opts *importOptions, args []string, read func(string, ubb.Settings) (*ubb.RichNode, error)) error {
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

	settings := cfg.Settings()
	tree, err := read(input, settings)
	if err != nil {
		return err
	}

	return opts.Emit(renderer, opts.write, ubb.New(settings).FromRich(tree), nil)
}

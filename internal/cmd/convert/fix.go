package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

type fixOptions struct {
	*cmdutil.Options
	check bool
	write string
}

// NewCmdFix creates the fix command.
func NewCmdFix() *cobra.Command {
	opts := &fixOptions{}

	cmd := &cobra.Command{
		Use:   "fix [file]",
		Short: "Rewrite UBB as well-formed markup",
		Long: `Rewrite UBB markup so every tag is closed and correctly nested.

Tag names are lowercased, aliases are replaced by their canonical name,
attributes are dropped from tags that take none, and literal brackets are
escaped. Fixing already fixed markup changes nothing.`,
		Example: `  # Print the fixed markup
  ubb fix post.ubb

  # Fix a file in place
  ubb fix post.ubb --write post.ubb

  # Fail if the markup needs fixing
  ubb fix post.ubb --check`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = cmdutil.OptionsFromCmd(cmd)
			return runFix(opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.check, "check", false, "Only report whether the markup is already well-formed")
	cmd.Flags().StringVarP(&opts.write, "write", "w", "", "Write the result to a file instead of stdout")

	return cmd
}

func runFix(opts *fixOptions, args []string) error {
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

	result := ubb.New(cfg.Settings()).Fix(input)

	if opts.check {
		if opts.Verbose {
			for _, w := range result.Warnings {
				renderer.Warning(w)
			}
		}
		if result.Output != input {
			renderer.RenderKeyValue("status", "needs fixing")
			return fmt.Errorf("markup is not well-formed (%d repairs)", len(result.Warnings))
		}
		renderer.RenderKeyValue("status", "well-formed")
		return nil
	}

	return opts.Emit(renderer, opts.write, result.Output, result.Warnings)
}

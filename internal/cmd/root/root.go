// Package root provides the root command for the ubb CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/completion"
	"github.com/open-cli-collective/ubb-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/ubb-cli/internal/cmd/convert"
	"github.com/open-cli-collective/ubb-cli/internal/cmd/importcmd"
	initcmd "github.com/open-cli-collective/ubb-cli/internal/cmd/init"
	"github.com/open-cli-collective/ubb-cli/internal/cmd/tags"
	"github.com/open-cli-collective/ubb-cli/internal/version"
	"github.com/open-cli-collective/ubb-cli/internal/view"
)

// NewCmdRoot creates the root command for ubb.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ubb",
		Short: "Convert UBB bracket markup",
		Long: `ubb converts UBB bracket markup to HTML and Markdown, repairs malformed
markup, and turns HTML or Markdown back into UBB.

Input is read from the file argument, or from stdin when none is given.

Get started by running: ubb init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/ubb/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: plain, table, json (default from config, else plain)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "print a warning for every repair made to the markup")

	cmd.SetVersionTemplate("ubb version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(convert.NewCmdHTML())
	cmd.AddCommand(convert.NewCmdFix())
	cmd.AddCommand(convert.NewCmdMarkdown())
	cmd.AddCommand(importcmd.NewCmdImport())
	cmd.AddCommand(tags.NewCmdTags())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// ReportError prints err as an error line on the command's error stream.
func ReportError(cmd *cobra.Command, err error) {
	noColor, _ := cmd.PersistentFlags().GetBool("no-color")
	r := view.NewRenderer(view.FormatPlain, noColor)
	r.SetErrWriter(cmd.ErrOrStderr())
	r.Error(err.Error())
}

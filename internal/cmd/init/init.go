// Package init provides the init command for ubb.
package init

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/ubb-cli/internal/config"
	"github.com/open-cli-collective/ubb-cli/internal/view"
	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

type initOptions struct {
	*cmdutil.Options
	defaultColor string
	linkColor    string
	flashImage   string
	noInput      bool
	force        bool
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize ubb configuration",
		Long: `Initialize ubb conversion settings.

This command will guide you through choosing the default text and link colors,
the white space handling of imported content, and the placeholder image shown
for video tags. The configuration will be saved to ~/.config/ubb/config.yml.`,
		Example: `  # Interactive setup
  ubb init

  # Non-interactive setup
  ubb init --no-input --default-color '#333333' --flash-image /img/flash.png`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Options = cmdutil.OptionsFromCmd(cmd)
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.defaultColor, "default-color", "", "Default text color (#rgb or #rrggbb)")
	cmd.Flags().StringVar(&opts.linkColor, "link-color", "", "Default link color (#rgb or #rrggbb)")
	cmd.Flags().StringVar(&opts.flashImage, "flash-image", "", "Placeholder image URL for video tags")
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "Save the flag values without prompting")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration without asking")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := opts.ConfigFile()

	if _, err := os.Stat(configPath); err == nil && !opts.force {
		if opts.noInput {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(opts.Stdout, "Initialization cancelled.")
			return nil
		}
	}

	defaults := ubb.DefaultSettings()
	cfg := &config.Config{
		DefaultColor: orDefault(opts.defaultColor, defaults.DefaultColor),
		LinkColor:    orDefault(opts.linkColor, defaults.LinkDefaultColor),
		FlashImage:   orDefault(opts.flashImage, defaults.FlashImage),
	}

	if !opts.noInput {
		if err := promptConfig(cfg, defaults); err != nil {
			return err
		}
	}

	return saveConfig(cfg, configPath, opts.Stdout)
}

func promptConfig(cfg *config.Config, defaults ubb.Settings) error {
	keepSpaces := defaults.KeepWhiteSpace
	keepNewLine := defaults.KeepNewLine
	format := string(view.FormatPlain)

	formatOptions := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default text color").
				Description("Text in this color is imported without a color tag").
				Placeholder(defaults.DefaultColor).
				Value(&cfg.DefaultColor).
				Validate(validateColor),

			huh.NewInput().
				Title("Default link color").
				Description("Links in this color are imported without a color tag").
				Placeholder(defaults.LinkDefaultColor).
				Value(&cfg.LinkColor).
				Validate(validateColor),

			huh.NewInput().
				Title("Video placeholder image").
				Description("Image shown in place of video tags").
				Placeholder(defaults.FlashImage).
				Value(&cfg.FlashImage),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Keep white space?").
				Description("When off, runs of white space in imported content collapse to one").
				Value(&keepSpaces),

			huh.NewConfirm().
				Title("Keep newlines?").
				Description("When on, newlines in imported content become line breaks").
				Value(&keepNewLine),

			huh.NewSelect[string]().
				Title("Output format").
				Options(formatOptions...).
				Value(&format),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.KeepWhiteSpace = config.Bool(keepSpaces)
	cfg.KeepNewLine = config.Bool(keepNewLine)
	cfg.OutputFormat = format
	return nil
}

func saveConfig(cfg *config.Config, configPath string, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  ubb html post.ubb")
	fmt.Fprintln(out, "  ubb import html page.html")

	return nil
}

func validateColor(s string) error {
	if s == "" {
		return errors.New("color is required")
	}
	return (&config.Config{DefaultColor: s}).Validate()
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

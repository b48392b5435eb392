package configcmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/ubb-cli/internal/config"
	"github.com/open-cli-collective/ubb-cli/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the settings in effect and where each one comes from.`,
		Example: `  # Show current config
  ubb config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmdutil.OptionsFromCmd(cmd))
		},
	}

	return cmd
}

type field struct {
	Label  string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func runShow(opts *cmdutil.Options) error {
	if opts.NoColor {
		color.NoColor = true
	}

	configPath := opts.ConfigFile()

	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings := cfg.Settings()

	source := func(envVar string, inFile bool) string {
		if envVar != "" && os.Getenv(envVar) != "" {
			return envVar
		}
		if inFile {
			return "config"
		}
		return "default"
	}

	format := cfg.OutputFormat
	if format == "" {
		format = string(view.FormatPlain)
	}

	fields := []field{
		{"Default color", settings.DefaultColor, source("UBB_DEFAULT_COLOR", fileCfg.DefaultColor != "")},
		{"Link color", settings.LinkDefaultColor, source("UBB_LINK_COLOR", fileCfg.LinkColor != "")},
		{"Keep spaces", strconv.FormatBool(settings.KeepWhiteSpace), source("UBB_KEEP_WHITESPACE", fileCfg.KeepWhiteSpace != nil)},
		{"Keep newline", strconv.FormatBool(settings.KeepNewLine), source("UBB_KEEP_NEWLINE", fileCfg.KeepNewLine != nil)},
		{"Flash image", settings.FlashImage, source("UBB_FLASH_IMAGE", fileCfg.FlashImage != "")},
		{"Output", format, source("", fileCfg.OutputFormat != "")},
	}

	renderer, err := opts.Renderer(cfg)
	if err != nil {
		return err
	}
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(map[string]interface{}{
			"config_file": configPath,
			"fields":      fields,
		})
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	for _, f := range fields {
		_, _ = bold.Fprintf(opts.Stdout, "%-15s", f.Label+":")
		fmt.Fprint(opts.Stdout, f.Value)
		_, _ = dim.Fprintf(opts.Stdout, "  (source: %s)\n", f.Source)
	}

	fmt.Fprintln(opts.Stdout)
	_, _ = dim.Fprintf(opts.Stdout, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(opts.Stdout, "(file not found)")
	}

	return nil
}

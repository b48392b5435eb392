package configcmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
)

// envVars are the environment variables that override the config file.
var envVars = []string{
	"UBB_DEFAULT_COLOR",
	"UBB_LINK_COLOR",
	"UBB_KEEP_WHITESPACE",
	"UBB_KEEP_NEWLINE",
	"UBB_FLASH_IMAGE",
}

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the ubb configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  ubb config clear`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClear(cmdutil.OptionsFromCmd(cmd))
		},
	}

	return cmd
}

func runClear(opts *cmdutil.Options) error {
	if opts.NoColor {
		color.NoColor = true
	}

	configPath := opts.ConfigFile()

	err := os.Remove(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	if err != nil {
		_, _ = green.Fprintf(opts.Stdout, "✓ No config file to remove\n")
	} else {
		_, _ = green.Fprintf(opts.Stdout, "✓ Configuration cleared from %s\n", configPath)
	}

	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		_, _ = dim.Fprintf(opts.Stdout, "\nNote: Environment variables will still be used: %v\n", activeVars)
	}

	return nil
}

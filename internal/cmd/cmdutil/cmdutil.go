// Package cmdutil holds helpers shared by the ubb commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/config"
	"github.com/open-cli-collective/ubb-cli/internal/view"
)

// Options carries the global flags and the streams a command works with.
type Options struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OptionsFromCmd reads the global flags of cmd.
func OptionsFromCmd(cmd *cobra.Command) *Options {
	opts := &Options{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
	opts.ConfigPath, _ = cmd.Flags().GetString("config")
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.NoColor, _ = cmd.Flags().GetBool("no-color")
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")
	return opts
}

// ConfigFile returns the configuration file in effect.
func (o *Options) ConfigFile() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return config.DefaultConfigPath()
}

// Config loads and validates the configuration with environment overrides.
func (o *Options) Config() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(o.ConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'ubb init' to configure)", err)
	}
	return cfg, nil
}

// Renderer returns a renderer on the command's streams. The --output flag
// wins over the configured output format.
func (o *Options) Renderer(cfg *config.Config) (*view.Renderer, error) {
	format := o.Output
	if format == "" && cfg != nil {
		format = cfg.OutputFormat
	}
	if err := view.ValidateFormat(format); err != nil {
		return nil, err
	}

	r := view.NewRenderer(view.Format(format), o.NoColor)
	r.SetWriter(o.Stdout)
	r.SetErrWriter(o.Stderr)
	return r, nil
}

// Emit delivers a conversion result: to the file named by write when set,
// otherwise through the renderer.
func (o *Options) Emit(r *view.Renderer, write, output string, warnings []string) error {
	if write == "" {
		return r.RenderResult(output, warnings, o.Verbose)
	}

	if err := WriteOutput(write, output); err != nil {
		return err
	}
	if o.Verbose {
		for _, w := range warnings {
			r.Warning(w)
		}
	}
	r.Success("Wrote " + write)
	return nil
}

// ReadInput returns the contents of the file named by args, or of stdin when
// no file or "-" is given.
func ReadInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// WriteOutput atomically replaces path with data.
func WriteOutput(path, data string) error {
	if err := renameio.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

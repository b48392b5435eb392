// Package tags provides the command that describes the tag grammar.
package tags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/ubb-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/ubb-cli/pkg/ubb"
)

type tagsOptions struct {
	*cmdutil.Options
}

// NewCmdTags creates the tags command.
func NewCmdTags() *cobra.Command {
	opts := &tagsOptions{}

	cmd := &cobra.Command{
		Use:   "tags [name]",
		Short: "List the supported tags",
		Long: `List the supported tags and what each may contain.

A tag opened where its parent may not contain it closes the parent first.
Tags that do not allow line breaks are closed at a newline and reopened after
it.`,
		Example: `  # List all tags
  ubb tags

  # Describe one tag by name or alias
  ubb tags url`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Options = cmdutil.OptionsFromCmd(cmd)
			return runTags(opts, args)
		},
	}

	return cmd
}

func runTags(opts *tagsOptions, args []string) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	renderer, err := opts.Renderer(cfg)
	if err != nil {
		return err
	}

	kinds := ubb.Kinds()
	if len(args) == 1 {
		k, ok := ubb.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown tag %q", args[0])
		}
		kinds = []ubb.Kind{k}
	}

	headers := []string{"TAG", "ALIASES", "ATTRIBUTE", "BLOCK", "LINE BREAKS", "CONTAINS"}
	rows := make([][]string, 0, len(kinds))
	for _, k := range kinds {
		rule := ubb.RuleFor(k)
		rows = append(rows, []string{
			rule.Name,
			orNone(strings.Join(ubb.Aliases(k), ", ")),
			yesNo(rule.AcceptsAttribute),
			yesNo(rule.IsBlock),
			yesNo(rule.AllowsLineBreak),
			contains(rule),
		})
	}

	renderer.RenderTable(headers, rows)
	return nil
}

func contains(rule ubb.Rule) string {
	switch rule.Children {
	case ubb.ChildrenAll:
		return "any tag"
	case ubb.ChildrenSet:
		var names []string
		for _, k := range rule.AllowedChildren() {
			names = append(names, k.String())
		}
		return strings.Join(names, ", ")
	default:
		return "text only"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

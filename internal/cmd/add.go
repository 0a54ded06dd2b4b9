package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/cmdutil"
	"github.com/wiptools/wip/internal/output"
)

// NewAddCmd creates the add command.
func NewAddCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var cf cmdutil.ComponentFlags

	c := &cobra.Command{
		Use:   "add <component_path>",
		Short: "Add a component to the package",
		Long: `Add a component to the top-level package of the current project.

Python modules and binary extensions take a path relative to the package
directory; the parent directory must exist. CLIs take a bare name, are
created as <package>/cli_<name> and registered as a poetry script.

Exactly one component type must be given.

Examples:
  wip add utils --py
  wip add utils/fast --cpp
  wip add solver --f90
  wip add hello --cli
  wip add tool --clisub`,
		Args: withValidation(cobra.ExactArgs(1)),
		RunE: func(c *cobra.Command, args []string) error {
			return runAdd(c, args, cfg, &cf)
		},
	}

	cf.AddTo(c)
	return c
}

func runAdd(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, cf *cmdutil.ComponentFlags) error {
	kind, err := cf.Kind()
	if err != nil {
		return err
	}

	p, err := cmdutil.FindProject(cfg)
	if err != nil {
		return err
	}

	added, err := p.Add(kind, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("Added %s %s", kind.Label(), output.StyleNoun.Render(added.Rel))))
	return nil
}

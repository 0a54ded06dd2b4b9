package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/cmdutil"
)

// NewInfoCmd creates the info command.
func NewInfoCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlag

	c := &cobra.Command{
		Use:   "info",
		Short: "Show project information",
		Long: `Show the metadata of the current project and the structure of its
top-level package, with every component labelled by its type.

Examples:
  wip info
  wip info -o yaml`,
		Args: withValidation(cobra.NoArgs),
		RunE: func(c *cobra.Command, _ []string) error {
			return runInfo(c, cfg, &of)
		},
	}

	of.AddTo(c)
	return c
}

func runInfo(c *cobra.Command, cfg *cmdtypes.GlobalConfig, of *cmdutil.OutputFlag) error {
	format, err := cmdutil.ParseFormat(of)
	if err != nil {
		return err
	}

	p, err := cmdutil.FindProject(cfg)
	if err != nil {
		return err
	}

	info, err := p.Info()
	if err != nil {
		return err
	}

	return cmdutil.WriteResult(c.OutOrStdout(), format, info, func(w io.Writer) error {
		return p.WriteText(w, info)
	})
}

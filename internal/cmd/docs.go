package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/cmdutil"
	"github.com/wiptools/wip/internal/docs"
	"github.com/wiptools/wip/internal/output"
)

// NewDocsCmd creates the docs command.
func NewDocsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var df cmdutil.DocsFlags

	c := &cobra.Command{
		Use:   "docs",
		Short: "Add documentation to the project",
		Long: `Add a documentation skeleton to the current project and an API reference
entry for every Python module.

Markdown documentation uses mkdocs, restructuredText documentation uses
sphinx. A project that already has documentation is left unchanged.

Examples:
  wip docs --md
  wip docs --rst`,
		Args: withValidation(cobra.NoArgs),
		RunE: func(c *cobra.Command, _ []string) error {
			return runDocs(c, cfg, &df)
		},
	}

	df.AddTo(c)
	return c
}

func runDocs(c *cobra.Command, cfg *cmdtypes.GlobalConfig, df *cmdutil.DocsFlags) error {
	p, err := cmdutil.FindProject(cfg)
	if err != nil {
		return err
	}

	format, err := docs.Setup(docs.Options{Root: p.Root, Params: p.Params, MD: df.MD, RST: df.RST})
	if err != nil {
		return err
	}
	if format != "" {
		fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
			fmt.Sprintf("Documentation created (%s)", format.Label())))
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/cmdutil"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/project"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var lf cmdutil.LanguageFlags

	c := &cobra.Command{
		Use:   "build [component_path]",
		Short: "Build binary extensions",
		Long: `Build binary extension modules with CMake.

Without a component path every C++ and Modern Fortran component of the
package is built; --cpp and --f90 restrict the build to one language. With
a component path only that component is built and the language flags are
ignored.

Examples:
  wip build
  wip build --f90
  wip build utils/fast`,
		Args: withValidation(cobra.MaximumNArgs(1)),
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, args, cfg, &lf)
		},
	}

	lf.AddTo(c)
	return c
}

func runBuild(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, lf *cmdutil.LanguageFlags) error {
	p, err := cmdutil.FindProject(cfg)
	if err != nil {
		return err
	}

	opts := project.BuildOptions{Cpp: lf.Cpp, F90: lf.F90, Runner: cfg.Runner}
	if len(args) == 1 {
		opts.Component = args[0]
	}

	built, err := p.Build(c.Context(), opts)
	if err != nil {
		return err
	}

	for _, b := range built {
		fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
			fmt.Sprintf("Built %s %s", b.Kind.Label(), output.StyleNoun.Render(b.Rel))))
	}
	return nil
}

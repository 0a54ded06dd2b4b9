package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/cmdutil"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/project"
)

// NewEnvCmd creates the env command.
func NewEnvCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlag

	c := &cobra.Command{
		Use:   "env",
		Short: "Check the development environment",
		Long: `Check that the tools wip relies on are installed: git, gh, cmake and
python3.

Inside a project, python3 is also checked against the minimal Python version
of the project. Missing or outdated tools are reported as warnings.`,
		Args: withValidation(cobra.NoArgs),
		RunE: func(c *cobra.Command, _ []string) error {
			return runEnv(c, cfg, &of)
		},
	}

	of.AddTo(c)
	return c
}

func runEnv(c *cobra.Command, cfg *cmdtypes.GlobalConfig, of *cmdutil.OutputFlag) error {
	format, err := cmdutil.ParseFormat(of)
	if err != nil {
		return err
	}

	// Outside a project only the tools themselves are checked.
	p, err := cmdutil.FindProject(cfg)
	if err != nil && !errors.Is(err, oerrors.ErrNotFound) {
		return err
	}

	report, err := project.CheckEnv(c.Context(), cfg.Runner, p)
	if err != nil {
		return err
	}

	return cmdutil.WriteResult(c.OutOrStdout(), format, report, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, report.Table().String())
		return err
	})
}

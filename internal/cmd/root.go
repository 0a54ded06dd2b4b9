// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/config"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/prompt"
	"github.com/wiptools/wip/internal/runner"
	"github.com/wiptools/wip/internal/version"
)

// NewRootCmd creates the root command for the wip CLI. Fields of cfg that
// are already set (runner, prompter, working directory) are kept, which lets
// tests substitute them.
func NewRootCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	if cfg == nil {
		cfg = &cmdtypes.GlobalConfig{}
	}
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:   "wip",
		Short: "Python project scaffolding",
		Long: `wip creates and maintains Python projects.

It provides commands to:
  - Create a project with documentation and git/GitHub repositories
  - Add Python modules, CLIs and C++/Modern Fortran binary extensions
  - Build binary extensions with CMake
  - Report on the project and the development environment`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          withValidation(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, cfg, &gf)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
			return cmd.Help()
		},
	}

	gf.AddTo(rootCmd)
	rootCmd.SetVersionTemplate("wip CLI v{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return oerrors.NewValidationError(err.Error(), "", "Run 'wip --help' for usage.")
	})

	rootCmd.AddCommand(
		NewInitCmd(cfg),
		NewEnvCmd(cfg),
		NewDocsCmd(cfg),
		NewAddCmd(cfg),
		NewInfoCmd(cfg),
		NewBuildCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals sets up logging and resolves the global configuration.
func initializeGlobals(cmd *cobra.Command, cfg *cmdtypes.GlobalConfig, gf *globalFlags) error {
	cfg.Verbosity = gf.Verbose
	output.SetupLogging(output.LogConfig{
		Verbosity: cfg.Verbosity,
		Writer:    cmd.ErrOrStderr(),
	})

	if cfg.Verbosity > 0 {
		output.Info(version.Get().String())
	}

	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: gf.Config})
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}
	config.LogResolvedValues(configPath)
	cfg.ConfigPath = configPath.Value

	if cfg.Runner == nil {
		r := runner.NewExecRunner()
		r.Stdout = cmd.OutOrStdout()
		r.Stderr = cmd.ErrOrStderr()
		cfg.Runner = r
	}
	if cfg.Prompter == nil {
		cfg.Prompter = prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	output.Debug("initializing CLI",
		"config", cfg.ConfigPath,
		"verbosity", cfg.Verbosity,
		"workdir", cfg.WorkDir,
	)
	return nil
}

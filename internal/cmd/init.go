package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/cmdutil"
	"github.com/wiptools/wip/internal/config"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/project"
	"github.com/wiptools/wip/internal/vcs"
)

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var df cmdutil.DocsFlags
	var (
		descriptionFlag   string
		pythonVersionFlag string
		visibilityFlag    string
	)

	c := &cobra.Command{
		Use:   "init <project_name>",
		Short: "Create a new project",
		Long: `Create a new Python project in the current directory.

The project directory gets a poetry pyproject.toml, a top-level package, a
test suite, optionally documentation, a local git repository and, when a
GitHub username is configured, a remote GitHub repository.

Missing identity values (full name, e-mail address, GitHub username) are
asked for once and stored in ~/.wip/config.json.

Examples:
  # Create a project, answering the remaining questions interactively
  wip init my-project

  # Create a private remote repository and markdown documentation
  wip init my-project --remote-visibility private --md

  # Create a project without a remote repository
  wip init my-project -d "Does things" --python-version 3.10 --remote-visibility none`,
		Args: withValidation(cobra.ExactArgs(1)),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, args, cfg, &df, descriptionFlag, pythonVersionFlag, visibilityFlag)
		},
	}

	c.Flags().StringVarP(&descriptionFlag, "description", "d", "",
		"Short project description (prompted for when empty)")
	c.Flags().StringVar(&pythonVersionFlag, "python-version", "",
		"Minimal Python version (prompted for when empty, default "+config.DefaultMinimalPythonVersion+")")
	c.Flags().StringVar(&visibilityFlag, "remote-visibility", string(vcs.Public),
		fmt.Sprintf("Visibility of the remote GitHub repository (%s)", strings.Join(vcs.ValidVisibilities(), ", ")))
	df.AddTo(c)

	return c
}

func runInit(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, df *cmdutil.DocsFlags, description, pythonVersion, visibility string) error {
	dir, err := cmdutil.WorkDir(cfg)
	if err != nil {
		return err
	}

	p, err := project.Init(c.Context(), project.InitOptions{
		Dir:           dir,
		Name:          args[0],
		Description:   description,
		PythonVersion: pythonVersion,
		Visibility:    visibility,
		MD:            df.MD,
		RST:           df.RST,
		ConfigFile:    cfg.ConfigPath,
		Prompter:      cfg.Prompter,
		Runner:        cfg.Runner,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("Created project %s in %s", output.StyleNoun.Render(p.Name()), p.Root)))
	return nil
}

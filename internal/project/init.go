package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wiptools/wip/internal/config"
	"github.com/wiptools/wip/internal/docs"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/prompt"
	"github.com/wiptools/wip/internal/pyproject"
	"github.com/wiptools/wip/internal/runner"
	"github.com/wiptools/wip/internal/templates"
	"github.com/wiptools/wip/internal/vcs"
)

// InitOptions configures Init.
type InitOptions struct {
	// Dir is the directory the project directory is created in.
	Dir string

	// Name is the project name, also the name of the project directory.
	Name string

	// Description and PythonVersion are prompted for when empty.
	Description   string
	PythonVersion string

	// Visibility of the remote repository: public, private or none.
	// Empty means public.
	Visibility string

	// MD and RST select a documentation format. When both are false the
	// user is asked.
	MD  bool
	RST bool

	// ConfigFile is the identity file. Empty means the default location.
	ConfigFile string

	Prompter prompt.Prompter
	Runner   runner.Runner
}

// RemoteTimeout bounds creating and pushing to the remote repository.
const RemoteTimeout = 5 * time.Minute

var identityTitles = map[string]string{
	config.KeyFullName:       "Enter your full name",
	config.KeyEmailAddress:   "Enter your e-mail address",
	config.KeyGithubUsername: "Enter your GitHub username (empty for no remote repositories)",
}

// Init creates a new project: the directory tree, its parameter file,
// optionally documentation, a local git repository and a remote GitHub
// repository. It is not transactional; a failure leaves what was created
// so far in place.
func Init(ctx context.Context, opts InitOptions) (*Project, error) {
	if opts.Visibility == "" {
		opts.Visibility = string(vcs.Public)
	}
	visibility, err := vcs.ParseVisibility(opts.Visibility)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "")
	}

	if err := templates.ValidateProjectName(opts.Name); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "")
	}

	root := filepath.Join(opts.Dir, opts.Name)
	exists, isDir, err := pathKind(root)
	if err != nil {
		return nil, err
	}
	if exists {
		what := "file"
		if isDir {
			what = "directory"
		}
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("A %s with name '%s' exists already.", what, opts.Name), root, "")
	}

	id, err := resolveIdentity(opts)
	if err != nil {
		return nil, err
	}

	if id.GithubUsername != "" {
		if err := ensureCredential(opts.Prompter, id.GithubUsername); err != nil {
			return nil, err
		}
	}

	params, err := projectParams(opts, id)
	if err != nil {
		return nil, err
	}

	err = output.RunTask(fmt.Sprintf("Expanding template %s", templates.Project), func() error {
		_, err := templates.Expand(templates.Project, opts.Dir, params, templates.Options{})
		var exists *templates.ExistsError
		if errors.As(err, &exists) {
			return oerrors.NewValidationError(err.Error(), exists.Path, "")
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := config.WriteParams(root, params); err != nil {
		return nil, err
	}
	p := &Project{Root: root, Params: params}

	if err := p.initDocs(opts); err != nil {
		return p, err
	}

	remote := visibility != vcs.None && id.GithubUsername != ""
	if !remote {
		if err := pyproject.BlankRemote(root); err != nil {
			return p, err
		}
	}

	author := vcs.Author{Name: id.FullName, Email: id.EmailAddress}
	err = output.RunTask("Creating a local git repo", func() error {
		return runner.RunPlan(ctx, opts.Runner, vcs.LocalRepoSteps(root, opts.Name, author))
	})
	if err != nil {
		return p, err
	}

	return p, p.createRemote(ctx, opts.Runner, id.GithubUsername, visibility)
}

// resolveIdentity loads the identity file and asks for missing values,
// offering the git identity as defaults. An optional key present with an
// empty value is not asked for again. The identity file is created when
// it did not exist.
func resolveIdentity(opts InitOptions) (config.Identity, error) {
	res, err := config.NewLoader().Load(opts.ConfigFile)
	if err != nil {
		return config.Identity{}, err
	}

	gitName, gitEmail := config.GitIdentity()
	defaults := map[string]string{
		config.KeyFullName:     gitName,
		config.KeyEmailAddress: gitEmail,
	}

	id := res.Identity
	var resolved []config.ResolvedValue
	for _, key := range config.IdentityKeys {
		if v := id.Get(key); v != "" || (res.IsSet(key) && !config.Required(key)) {
			resolved = append(resolved, config.Resolve(key,
				config.Candidate{Source: res.Sources[key], Value: v},
				config.Candidate{Source: config.SourceGit, Value: defaults[key]},
			))
			continue
		}

		answer, err := opts.Prompter.Ask(prompt.Question{Title: identityTitles[key], Default: defaults[key]})
		if err != nil {
			return id, err
		}
		if answer == "" && config.Required(key) {
			return id, oerrors.ErrAborted
		}

		source := config.SourcePrompt
		if answer == defaults[key] {
			source = config.SourceGit
		}
		id.Set(key, answer)
		resolved = append(resolved, config.Resolve(key, config.Candidate{Source: source, Value: answer}))
	}
	config.LogResolvedValues(resolved...)

	if !res.Exists {
		created, err := config.Save(res.Path, id)
		if err != nil {
			return id, err
		}
		if created {
			output.Info("Created config file", "path", res.Path)
		}
	}
	return id, nil
}

// ensureCredential makes sure the personal access token of user is in its
// standard location, asking for a directory holding it until one does. An
// empty answer aborts.
func ensureCredential(p prompt.Prompter, user string) error {
	target, err := config.CredentialFile(user)
	if err != nil {
		return err
	}
	if config.FileExists(target) {
		return nil
	}

	fileName := user + ".pat"
	for {
		answer, err := p.Ask(prompt.Question{
			Title: fmt.Sprintf("Enter the location of the personal access token for github.com/%s (a directory containing '%s')",
				user, fileName),
		})
		if err != nil {
			return err
		}
		if answer == "" {
			return oerrors.ErrAborted
		}

		dir, err := config.ExpandPath(answer)
		if err != nil {
			return err
		}
		source := filepath.Join(dir, fileName)
		if !config.FileExists(source) {
			output.Warn("No personal access token found", "path", source)
			continue
		}
		return copyCredential(source, target)
	}
}

func copyCredential(source, target string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	// WriteFile keeps the mode of a file that already existed.
	if err := os.Chmod(target, 0o600); err != nil {
		return err
	}
	output.Info("Copied personal access token", "path", target)
	return nil
}

// projectParams completes the parameter set from flags and prompts.
func projectParams(opts InitOptions, id config.Identity) (config.Params, error) {
	description := opts.Description
	if description == "" {
		var err error
		description, err = opts.Prompter.Ask(prompt.Question{
			Title:   "Enter a short description for the project",
			Default: config.DefaultDescription,
		})
		if err != nil {
			return nil, err
		}
	}

	pythonVersion := opts.PythonVersion
	if pythonVersion == "" {
		var err error
		pythonVersion, err = opts.Prompter.Ask(prompt.Question{
			Title:   "Enter the minimal Python version",
			Default: config.DefaultMinimalPythonVersion,
		})
		if err != nil {
			return nil, err
		}
	}

	params := config.Params{
		config.KeyProjectName:          opts.Name,
		config.KeyPackageName:          templates.PackageName(opts.Name),
		config.KeyDescription:          description,
		config.KeyMinimalPythonVersion: pythonVersion,
	}
	params.Merge(id.Params())

	var invalid config.ValidationErrors
	if err := params.Validate(); errors.As(err, &invalid) {
		return nil, oerrors.NewValidationError(
			strings.TrimSpace(invalid.Error()), "",
			"The minimal Python version is a version such as 3.8 or 3.10.2.")
	} else if err != nil {
		return nil, err
	}
	return params, nil
}

// initDocs sets up documentation in the format given by the flags, or the
// one the user picks when no flag was given.
func (p *Project) initDocs(opts InitOptions) error {
	md, rst := opts.MD, opts.RST
	if !md && !rst {
		answer, err := opts.Prompter.Choose(prompt.Choice{
			Title: "Add documentation?",
			Options: []prompt.Option{
				{Key: "", Label: "no documentation"},
				{Key: "m", Label: docs.Markdown.Label()},
				{Key: "r", Label: docs.RST.Label()},
			},
		})
		if err != nil {
			return err
		}
		md, rst = answer == "m", answer == "r"
	}
	if !md && !rst {
		return nil
	}

	_, err := docs.Setup(docs.Options{Root: p.Root, Params: p.Params, MD: md, RST: rst})
	return err
}

// createRemote creates the GitHub repository and pushes the local history.
func (p *Project) createRemote(ctx context.Context, r runner.Runner, user string, visibility vcs.Visibility) error {
	if visibility == vcs.None {
		return nil
	}
	if user == "" {
		output.Warn("No GitHub username configured: not creating a remote repository.")
		return nil
	}

	credential, err := config.CredentialFile(user)
	if err != nil {
		return err
	}
	token, err := os.ReadFile(credential)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return oerrors.NewNotFoundError("personal access token not found", credential,
				fmt.Sprintf("Save a GitHub token for %s in this file.", user))
		}
		return err
	}

	title := fmt.Sprintf("Creating a remote GitHub repo (%s)", visibility)
	return output.RunTask(title, func() error {
		return output.RunWithSpinner(ctx, func(ctx context.Context) error {
			steps := vcs.RemoteRepoSteps(p.Root, strings.TrimSpace(string(token)), visibility)
			return runner.RunPlan(ctx, r, steps)
		}, output.WithTitle(fmt.Sprintf("Pushing to github.com/%s/%s", user, p.Name())),
			output.WithTimeout(RemoteTimeout))
	})
}

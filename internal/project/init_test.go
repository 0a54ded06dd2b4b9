package project

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiptools/wip/internal/config"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/prompt"
	"github.com/wiptools/wip/internal/pyproject"
	"github.com/wiptools/wip/internal/runner/runnertest"
	"github.com/wiptools/wip/internal/testutil"
)

func initOptions(dir, name string, answers ...string) (InitOptions, *runnertest.Recorder) {
	rec := runnertest.New()
	in := strings.NewReader(strings.Join(answers, "\n") + "\n")
	return InitOptions{
		Dir:      dir,
		Name:     name,
		Prompter: prompt.NewScripted(in, io.Discard),
		Runner:   rec,
	}, rec
}

func TestInit_ExistingFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foo"), []byte("x"), 0o644))

	opts, rec := initOptions(dir, "foo")
	_, err := Init(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "A file with name 'foo' exists already.")
	assert.Empty(t, rec.Steps)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "nothing is created next to the existing file")
}

func TestInit_ExistingDirectory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "foo"), 0o755))

	opts, _ := initOptions(dir, "foo")
	_, err := Init(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "A directory with name 'foo' exists already.")
}

func TestInit_InvalidVisibility(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	opts, rec := initOptions(dir, "foo")
	opts.Visibility = "secret"
	_, err := Init(context.Background(), opts)
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.NoDirExists(t, filepath.Join(dir, "foo"))
	assert.Empty(t, rec.Steps)
}

func TestInit_InvalidPythonVersion(t *testing.T) {
	for _, version := range []string{"three", "v3.9", "3.9.0-rc1"} {
		t.Run(version, func(t *testing.T) {
			home, _ := isolate(t)
			testutil.WriteIdentity(t, home, "")
			dir := t.TempDir()

			opts, rec := initOptions(dir, "foo")
			opts.Description = "d"
			opts.PythonVersion = version
			opts.MD = true
			_, err := Init(context.Background(), opts)
			require.Error(t, err)
			assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
			assert.Contains(t, err.Error(), config.KeyMinimalPythonVersion)
			assert.NoDirExists(t, filepath.Join(dir, "foo"))
			assert.Empty(t, rec.Steps)
		})
	}
}

func TestInit_EmptyGithubUsernameIsNotAskedAgain(t *testing.T) {
	home, _ := isolate(t)
	testutil.WriteIdentity(t, home, "")
	dir := t.TempDir()

	for _, name := range []string{"foo", "bar"} {
		// no scripted answers: any question fails with ErrInputExhausted
		opts, rec := initOptions(dir, name)
		opts.Prompter = prompt.NewScripted(strings.NewReader(""), io.Discard)
		opts.Description = "d"
		opts.PythonVersion = "3.9"
		opts.MD = true
		opts.Visibility = "none"

		p, err := Init(context.Background(), opts)
		require.NoError(t, err, name)
		assert.Equal(t, "", p.Params[config.KeyGithubUsername])
		assert.Len(t, rec.Steps, 3)
	}
}

func TestInit_SavedIdentityIsReused(t *testing.T) {
	home, _ := isolate(t)
	dir := t.TempDir()

	// full name, e-mail, empty GitHub username, description, python version, docs
	opts, _ := initOptions(dir, "first", "Jane Doe", "jane@example.com", "", "d", "3.9", "")
	_, err := Init(context.Background(), opts)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(home, ".wip", "config.json"))

	// only description, python version and docs are asked the second time
	opts, _ = initOptions(dir, "second", "d", "3.9", "")
	p, err := Init(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Params[config.KeyFullName])
}

func TestInit_QuotedDescription(t *testing.T) {
	home, _ := isolate(t)
	testutil.WriteIdentity(t, home, "")
	dir := t.TempDir()

	opts, rec := initOptions(dir, "foo")
	opts.Description = `A "quoted" tool \ with a backslash`
	opts.PythonVersion = "3.9"
	opts.MD = true
	opts.Visibility = "none"
	p, err := Init(context.Background(), opts)
	require.NoError(t, err)
	assert.Len(t, rec.Steps, 3)

	info, err := p.Info()
	require.NoError(t, err)
	assert.Equal(t, opts.Description, info.Description)
	assert.Empty(t, info.Repository)
}

func TestInit_ScriptedAnswers(t *testing.T) {
	home, logs := isolate(t)
	dir := t.TempDir()

	// full name, e-mail, GitHub username, description, python version, docs
	opts, rec := initOptions(dir, "My-Project", "Jane Doe", "jane@example.com", "", "", "3.10", "m")
	p, err := Init(context.Background(), opts)
	require.NoError(t, err)

	root := filepath.Join(dir, "My-Project")
	assert.Equal(t, root, p.Root)

	params, err := config.ReadParams(root)
	require.NoError(t, err)
	assert.Equal(t, "my_project", params[config.KeyPackageName])
	assert.Equal(t, "3.10", params[config.KeyMinimalPythonVersion])
	assert.Equal(t, config.DefaultDescription, params[config.KeyDescription])
	assert.Equal(t, "", params[config.KeyGithubUsername])
	assert.DirExists(t, filepath.Join(root, "my_project"))

	assert.FileExists(t, filepath.Join(home, ".wip", "config.json"), "identity file is created")
	assert.FileExists(t, filepath.Join(root, "docs", "index.md"))

	poetry, err := pyproject.Read(root)
	require.NoError(t, err)
	assert.Empty(t, poetry.Repository)
	assert.Empty(t, poetry.Homepage)

	assert.Equal(t, []string{
		"git init --initial-branch=main",
		"git add -A",
		"git commit -m Initial commit from wip init My-Project",
	}, rec.Commands())
	for _, s := range rec.Steps {
		assert.Equal(t, root, s.Dir)
	}
	assert.Contains(t, rec.Steps[2].Env, "GIT_AUTHOR_NAME=Jane Doe")
	assert.Contains(t, logs.String(), "No GitHub username configured")
}

func TestInit_UsesIdentityFile(t *testing.T) {
	home, _ := isolate(t)
	testutil.WriteIdentity(t, home, "")
	dir := t.TempDir()

	// description, python version, docs
	opts, rec := initOptions(dir, "foo", "Foo things", "", "")
	opts.Visibility = "none"
	p, err := Init(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", p.Params[config.KeyFullName])
	assert.Equal(t, "Foo things", p.Params[config.KeyDescription])
	assert.Equal(t, config.DefaultMinimalPythonVersion, p.Params[config.KeyMinimalPythonVersion])
	assert.NoDirExists(t, filepath.Join(p.Root, "docs"))
	assert.Len(t, rec.Steps, 3)
}

func TestInit_EmptyCredentialAnswerAborts(t *testing.T) {
	home, _ := isolate(t)
	testutil.WriteIdentity(t, home, "jdoe")
	dir := t.TempDir()

	opts, rec := initOptions(dir, "foo", "")
	_, err := Init(context.Background(), opts)
	require.ErrorIs(t, err, oerrors.ErrAborted)
	assert.Equal(t, oerrors.ExitSuccess, oerrors.ExitCodeFromError(err))
	assert.NoDirExists(t, filepath.Join(dir, "foo"))
	assert.Empty(t, rec.Steps)
}

func TestInit_CreatesRemote(t *testing.T) {
	home, _ := isolate(t)
	testutil.WriteIdentity(t, home, "jdoe")
	tokens := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tokens, "jdoe.pat"), []byte("s3cret\n"), 0o644))
	dir := t.TempDir()

	// a directory without the token, the token directory, then description,
	// python version and docs
	opts, rec := initOptions(dir, "foo", filepath.Join(home, "nowhere"), tokens, "", "", "r")
	opts.Visibility = "PRIVATE"
	p, err := Init(context.Background(), opts)
	require.NoError(t, err)

	credential := filepath.Join(home, ".wiptools", "jdoe.pat")
	info, err := os.Stat(credential)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	assert.Equal(t, []string{
		"git init --initial-branch=main",
		"git add -A",
		"git commit -m Initial commit from wip init foo",
		"gh auth login --with-token",
		"gh repo create --source . --private --push",
	}, rec.Commands())
	assert.Equal(t, "s3cret", rec.Steps[3].Stdin)
	for i, ctx := range rec.Contexts {
		_, hasDeadline := ctx.Deadline()
		assert.Equal(t, i >= 3, hasDeadline, "only remote steps run with the remote timeout: %s", rec.Steps[i])
	}
	assert.FileExists(t, filepath.Join(p.Root, "docs", "index.rst"))

	poetry, err := pyproject.Read(p.Root)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/jdoe/foo", poetry.Repository)
}

func TestInit_VisibilityNoneSkipsRemote(t *testing.T) {
	home, _ := isolate(t)
	testutil.WriteIdentity(t, home, "jdoe")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".wiptools"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".wiptools", "jdoe.pat"), []byte("t"), 0o600))
	dir := t.TempDir()

	opts, rec := initOptions(dir, "foo")
	opts.Description = "d"
	opts.PythonVersion = "3.11"
	opts.MD = true
	opts.Visibility = "none"
	p, err := Init(context.Background(), opts)
	require.NoError(t, err)

	assert.Len(t, rec.Steps, 3)
	poetry, err := pyproject.Read(p.Root)
	require.NoError(t, err)
	assert.Empty(t, poetry.Repository)
}

func TestInit_InputExhausted(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	opts, _ := initOptions(dir, "foo", "Jane Doe")
	opts.Prompter = prompt.NewScripted(strings.NewReader("Jane Doe\n"), io.Discard)
	_, err := Init(context.Background(), opts)
	require.ErrorIs(t, err, prompt.ErrInputExhausted)
}

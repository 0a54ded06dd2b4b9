package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wiptools/wip/internal/cmdtypes"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/runner/runnertest"
	"github.com/wiptools/wip/internal/testutil"
)

// isolate points every user-level location at a fresh home directory and
// restores the logger afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	home := testutil.Isolate(t)
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return home
}

type result struct {
	code   int
	stdout string
	stderr string
}

// run executes wip with args in dir, feeding input to the prompts.
func run(t *testing.T, dir string, rec *runnertest.Recorder, input string, args ...string) result {
	t.Helper()
	cfg := &cmdtypes.GlobalConfig{WorkDir: dir, Runner: rec}
	root := NewRootCmd(cfg)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(input))
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	code := Execute(context.Background(), root)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// newProject creates project foo in a temporary directory without a remote
// and returns its root.
func newProject(t *testing.T) string {
	t.Helper()
	home := isolate(t)
	testutil.WriteIdentity(t, home, "")
	dir := t.TempDir()

	res := run(t, dir, runnertest.New(), "\n",
		"init", "foo", "-d", "Foo things", "--python-version", "3.9", "--remote-visibility", "none")
	require.Equal(t, 0, res.code, res.stderr)
	return filepath.Join(dir, "foo")
}

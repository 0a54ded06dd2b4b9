package project

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wiptools/wip/internal/config"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/templates"
	"github.com/wiptools/wip/internal/testutil"
)

// isolate points every user-level location at a fresh home directory and
// captures log output.
func isolate(t *testing.T) (home string, logs *bytes.Buffer) {
	t.Helper()
	home = testutil.Isolate(t)

	logs = &bytes.Buffer{}
	output.SetupLogging(output.LogConfig{Writer: logs})
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return home, logs
}

func testParams(name string) config.Params {
	return config.Params{
		config.KeyFullName:             "Jane Doe",
		config.KeyEmailAddress:         "jane@example.com",
		config.KeyGithubUsername:       "jdoe",
		config.KeyProjectName:          name,
		config.KeyPackageName:          templates.PackageName(name),
		config.KeyDescription:          "A test project",
		config.KeyMinimalPythonVersion: "3.9",
	}
}

// newTestProject expands the project template without running any tool.
func newTestProject(t *testing.T, name string) *Project {
	t.Helper()
	base := t.TempDir()
	params := testParams(name)
	_, err := templates.Expand(templates.Project, base, params, templates.Options{})
	require.NoError(t, err)

	root := filepath.Join(base, name)
	require.NoError(t, config.WriteParams(root, params))

	p, err := Open(root)
	require.NoError(t, err)
	return p
}

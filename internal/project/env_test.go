package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/runner/runnertest"
)

func fakeTools() *runnertest.Recorder {
	return runnertest.New().
		Respond("git --version", "git version 2.43.0\n").
		Respond("gh --version", "gh version 2.40.1 (2023-12-13)\n").
		Respond("cmake --version", "cmake version 3.28.1\n\nCMake suite maintained by Kitware\n").
		Respond("python3 --version", "Python 3.8.10\n")
}

func TestCheckEnv(t *testing.T) {
	_, logs := isolate(t)
	rec := fakeTools().Hide("gh")

	report, err := CheckEnv(context.Background(), rec, nil)
	require.NoError(t, err)
	require.Len(t, report.Tools, 4)

	assert.Equal(t, ToolStatus{Name: "git", Path: "/usr/bin/git", Version: "2.43.0", Status: output.StatusFound}, report.Tools[0])
	assert.Equal(t, output.StatusMissing, report.Tools[1].Status)
	assert.Equal(t, "3.28.1", report.Tools[2].Version)
	assert.Equal(t, "3.8.10", report.Tools[3].Version)
	assert.Equal(t, []string{"gh"}, report.Missing())
	assert.Contains(t, logs.String(), "gh not found")

	table := report.Table().String()
	assert.Contains(t, table, "cmake")
	assert.Contains(t, table, "3.28.1")
}

func TestCheckEnv_PythonTooOld(t *testing.T) {
	_, logs := isolate(t)
	p := newTestProject(t, "foo")

	report, err := CheckEnv(context.Background(), fakeTools(), p)
	require.NoError(t, err)
	assert.Equal(t, output.StatusOld, report.Tools[3].Status, "project requires 3.9")
	assert.Contains(t, logs.String(), "older than the minimal Python version")
}

func TestCheckEnv_PythonRecentEnough(t *testing.T) {
	isolate(t)
	p := newTestProject(t, "foo")
	rec := fakeTools().Respond("python3 --version", "Python 3.12.1\n")

	report, err := CheckEnv(context.Background(), rec, p)
	require.NoError(t, err)
	assert.Equal(t, output.StatusFound, report.Tools[3].Status)
	assert.Equal(t, "git=found gh=found cmake=found python3=found", report.String())
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/runner/runnertest"
	"github.com/wiptools/wip/internal/version"
)

func TestRoot_Version(t *testing.T) {
	isolate(t)

	res := run(t, t.TempDir(), runnertest.New(), "", "--version")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, version.Get().String()+"\n", res.stdout)
}

func TestRoot_NoCommandPrintsVersion(t *testing.T) {
	isolate(t)

	res := run(t, t.TempDir(), runnertest.New(), "")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, version.Get().String())
	assert.Contains(t, res.stdout, "Available Commands")
}

func TestRoot_VerbosePrintsBanner(t *testing.T) {
	isolate(t)

	res := run(t, t.TempDir(), runnertest.New(), "", "-vv", "version")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, version.Get().String())
	assert.Contains(t, res.stderr, "initializing CLI")
	assert.Contains(t, res.stdout, "Commit:")
}

func TestRoot_UsageErrorsAreValidationErrors(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"--bogus"},
		{"init"},
		{"init", "a", "b"},
		{"info", "extra"},
		{"build", "a", "b"},
	} {
		res := run(t, t.TempDir(), runnertest.New(), "", args...)
		assert.Equal(t, oerrors.ExitValidationError, res.code, "%v", args)
		assert.Contains(t, res.stderr, "validation failed", "%v", args)
	}
}

func TestRoot_Subcommands(t *testing.T) {
	root := NewRootCmd(nil)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"init", "env", "docs", "add", "info", "build", "version"} {
		assert.Contains(t, names, want)
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	v := root.PersistentFlags().Lookup("verbose")
	if assert.NotNil(t, v) {
		assert.Equal(t, "v", v.Shorthand)
		assert.Equal(t, "count", v.Value.Type())
	}
}

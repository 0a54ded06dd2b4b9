package project

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiptools/wip/internal/component"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/pyproject"
)

func TestKindFromFlags(t *testing.T) {
	tests := []struct {
		name                      string
		py, cli, clisub, cpp, f90 bool
		want                      component.Kind
		wantErr                   bool
	}{
		{name: "py", py: true, want: component.Python},
		{name: "cli", cli: true, want: component.CLI},
		{name: "clisub", clisub: true, want: component.CLISub},
		{name: "cpp", cpp: true, want: component.Cpp},
		{name: "f90", f90: true, want: component.F90},
		{name: "none", wantErr: true},
		{name: "several", py: true, cpp: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := KindFromFlags(tt.py, tt.cli, tt.clisub, tt.cpp, tt.f90)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestAdd_NativeComponentsClassify(t *testing.T) {
	isolate(t)
	p := newTestProject(t, "foo")

	for _, kind := range []component.Kind{component.Python, component.Cpp, component.F90} {
		t.Run(kind.String(), func(t *testing.T) {
			name := "comp_" + kind.String()
			c, err := p.Add(kind, name)
			require.NoError(t, err)

			assert.Equal(t, filepath.Join(p.PackageDir(), name), c.Path)
			assert.Equal(t, "foo/"+name, c.Rel)
			assert.Equal(t, kind, component.Classify(c.Path))
		})
	}
}

func TestAdd_NestedPath(t *testing.T) {
	isolate(t)
	p := newTestProject(t, "foo")

	_, err := p.Add(component.F90, "sub/fx")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err), "parent must exist")

	_, err = p.Add(component.Python, "sub")
	require.NoError(t, err)
	c, err := p.Add(component.F90, "sub/fx")
	require.NoError(t, err)
	assert.Equal(t, "foo.sub.fx", c.Dotted())
	assert.Equal(t, component.F90, component.Classify(c.Path))
}

func TestAdd_RejectsInvalidPaths(t *testing.T) {
	isolate(t)
	p := newTestProject(t, "foo")

	for _, rel := range []string{"class", "1abc", "../escape", "/abs", "has-dash", "."} {
		t.Run(rel, func(t *testing.T) {
			_, err := p.Add(component.Python, rel)
			require.Error(t, err)
			assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
		})
	}
}

func TestAdd_ExistingTarget(t *testing.T) {
	isolate(t)
	p := newTestProject(t, "foo")

	_, err := p.Add(component.Cpp, "ext")
	require.NoError(t, err)
	_, err = p.Add(component.Python, "ext")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestAdd_CLIRegistersScript(t *testing.T) {
	isolate(t)
	p := newTestProject(t, "foo")

	c, err := p.Add(component.CLI, "go")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.PackageDir(), "cli_go"), c.Path)
	assert.Equal(t, component.CLI, component.Classify(c.Path))

	sub, err := p.Add(component.CLISub, "tool")
	require.NoError(t, err)
	assert.Equal(t, component.CLISub, component.Classify(sub.Path))

	poetry, err := pyproject.Read(p.Root)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"go":   "foo.cli_go.__main__:main",
		"tool": "foo.cli_tool.__main__:main",
	}, poetry.Scripts)

	_, err = p.Add(component.CLI, "go")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestAdd_CLINameWithSeparator(t *testing.T) {
	isolate(t)
	p := newTestProject(t, "foo")

	_, err := p.Add(component.CLI, "sub/go")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.NoDirExists(t, filepath.Join(p.PackageDir(), "cli_sub"))
}

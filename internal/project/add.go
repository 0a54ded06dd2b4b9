package project

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/wiptools/wip/internal/component"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/pyproject"
	"github.com/wiptools/wip/internal/templates"
)

// KeyComponentName is the template parameter holding the directory name of
// the component being added.
const KeyComponentName = "component_name"

// KindFromFlags returns the single kind selected by the add flags. No flag
// or more than one is a validation error.
func KindFromFlags(py, cli, clisub, cpp, f90 bool) (component.Kind, error) {
	selected := component.None
	count := 0
	for kind, set := range map[component.Kind]bool{
		component.Python: py,
		component.CLI:    cli,
		component.CLISub: clisub,
		component.Cpp:    cpp,
		component.F90:    f90,
	} {
		if set {
			selected = kind
			count++
		}
	}

	if count != 1 {
		return component.None, oerrors.NewValidationError(
			"exactly one component type must be specified",
			"", "Use one of --py, --cli, --clisub, --cpp, --f90.")
	}
	return selected, nil
}

// Add creates a component of the given kind. For Python modules and binary
// extensions rel is a path relative to the package directory whose parent
// must exist; for CLIs it is the bare CLI name.
func (p *Project) Add(kind component.Kind, rel string) (component.Component, error) {
	if kind == component.None {
		return component.Component{}, oerrors.NewValidationError("no component type specified", "", "")
	}
	if kind.IsCLI() {
		return p.addCLI(kind, rel)
	}

	rel = filepath.ToSlash(rel)
	clean := path.Clean(rel)
	if path.IsAbs(clean) || clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return component.Component{}, oerrors.NewValidationError(
			fmt.Sprintf("component path '%s' must be relative to the package directory", rel), p.PackageDir(), "")
	}
	for _, segment := range strings.Split(clean, "/") {
		if err := templates.ValidateIdentifier(segment); err != nil {
			return component.Component{}, oerrors.NewValidationError(err.Error(), "", "")
		}
	}

	parent := filepath.Join(p.PackageDir(), filepath.FromSlash(path.Dir(clean)))
	if exists, isDir, err := pathKind(parent); err != nil {
		return component.Component{}, err
	} else if !exists || !isDir {
		return component.Component{}, oerrors.NewNotFoundError(
			fmt.Sprintf("parent directory of '%s' does not exist", clean), parent, "Add the parent component first.")
	}

	return p.expandComponent(kind, parent, path.Base(clean), path.Base(clean))
}

func (p *Project) addCLI(kind component.Kind, name string) (component.Component, error) {
	if strings.ContainsAny(name, `/\`) {
		return component.Component{}, oerrors.NewValidationError(
			fmt.Sprintf("CLI name '%s' must not contain path separators", name), "",
			"CLIs are always added to the top-level package.")
	}
	if err := templates.ValidateIdentifier(name); err != nil {
		return component.Component{}, oerrors.NewValidationError(err.Error(), "", "")
	}

	c, err := p.expandComponent(kind, p.PackageDir(), name, component.CLIPrefix+name)
	if err != nil {
		return c, err
	}

	target := fmt.Sprintf("%s.%s%s.__main__:main", p.PackageName(), component.CLIPrefix, name)
	if err := pyproject.AddScript(p.Root, name, target); err != nil {
		if errors.Is(err, pyproject.ErrScriptExists) {
			return c, oerrors.NewValidationError(err.Error(), filepath.Join(p.Root, pyproject.FileName), "")
		}
		return c, err
	}
	output.Info("Registered CLI", "script", name, "target", target)
	return c, nil
}

// expandComponent expands the template of kind into parent. dirName is the
// directory the template creates.
func (p *Project) expandComponent(kind component.Kind, parent, name, dirName string) (component.Component, error) {
	dir := filepath.Join(parent, dirName)
	c := component.Component{Path: dir, Kind: kind}
	if rel, err := filepath.Rel(p.Root, dir); err == nil {
		c.Rel = filepath.ToSlash(rel)
	}

	if exists, _, err := pathKind(dir); err != nil {
		return c, err
	} else if exists {
		return c, oerrors.NewValidationError(
			fmt.Sprintf("'%s' exists already", c.Rel), dir, "")
	}

	params := p.Params.Clone()
	params[KeyComponentName] = name

	title := fmt.Sprintf("Adding %s %s", kind.Label(), output.StyleNoun.Render(c.Rel))
	err := output.RunTask(title, func() error {
		_, err := templates.Expand(kind.Template(), parent, params, templates.Options{})
		return err
	})
	return c, err
}

// Package project implements the wip commands on a project tree: creating
// it, adding components, reporting on it and building it.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wiptools/wip/internal/component"
	"github.com/wiptools/wip/internal/config"
	oerrors "github.com/wiptools/wip/internal/errors"
)

// Project is a directory created by wip init.
type Project struct {
	// Root is the directory containing the parameter file.
	Root string

	// Params is the parameter set the project was created with.
	Params config.Params
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.Params[config.KeyProjectName]
}

// PackageName returns the name of the top-level Python package.
func (p *Project) PackageName() string {
	return p.Params[config.KeyPackageName]
}

// PackageDir returns the directory of the top-level Python package.
func (p *Project) PackageDir() string {
	return filepath.Join(p.Root, p.PackageName())
}

// Components lists the components of the package in walk order.
func (p *Project) Components() ([]component.Component, error) {
	return component.Discover(p.PackageDir())
}

// Find walks up from start to the nearest directory containing a parameter
// file and opens the project there.
func Find(start string) (*Project, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if config.FileExists(filepath.Join(dir, config.ParamsFile)) {
			return Open(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, oerrors.NewNotFoundError(
		fmt.Sprintf("not inside a wip project (no %s found)", config.ParamsFile),
		start,
		"Run 'wip init <project_name>' to create a project, or cd into one.",
	)
}

// Open reads the project rooted at root.
func Open(root string) (*Project, error) {
	params, err := config.ReadParams(root)
	if err != nil {
		path := filepath.Join(root, config.ParamsFile)
		var verrs config.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return nil, oerrors.NewValidationError(verrs.Error(), path,
				"The parameter file was written by 'wip init'; restore the missing or invalid entries.")
		case errors.Is(err, fs.ErrNotExist):
			return nil, oerrors.NewNotFoundError("project parameter file not found", path, "")
		default:
			return nil, err
		}
	}
	return &Project{Root: root, Params: params}, nil
}

// pathKind describes what, if anything, exists at path.
func pathKind(path string) (exists, isDir bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, false, nil
		}
		return false, false, err
	}
	return true, info.IsDir(), nil
}

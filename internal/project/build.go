package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/wiptools/wip/internal/build"
	"github.com/wiptools/wip/internal/component"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/runner"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Component is the path of a single component to build, relative to
	// the package directory or the project root. Empty builds all.
	Component string

	// Cpp and F90 restrict a full build to these languages. Neither means
	// both.
	Cpp bool
	F90 bool

	Runner runner.Runner
}

// Build builds a single binary extension, or every binary extension of the
// selected languages, and returns the components that were built.
func (p *Project) Build(ctx context.Context, opts BuildOptions) ([]component.Component, error) {
	if opts.Component != "" {
		if opts.Cpp {
			output.Warn("Building a single component: ignoring '--cpp'.")
		}
		if opts.F90 {
			output.Warn("Building a single component: ignoring '--f90'.")
		}

		c, err := p.lookupComponent(opts.Component)
		if err != nil {
			return nil, err
		}
		if !c.Kind.IsNative() {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("'%s' is not a binary extension", c.Rel), c.Path,
				"Only C++ and Modern Fortran components can be built.")
		}

		b := &build.Builder{Runner: opts.Runner, Languages: build.AllLanguages}
		if err := b.Build(ctx, c); err != nil {
			return nil, err
		}
		return []component.Component{c}, nil
	}

	components, err := p.Components()
	if err != nil {
		return nil, err
	}

	b := &build.Builder{Runner: opts.Runner, Languages: build.LanguagesFromFlags(opts.Cpp, opts.F90)}
	built, err := b.BuildAll(ctx, components)
	if err != nil {
		return built, err
	}
	if len(built) == 0 {
		output.Info("No binary extensions to build.")
	}
	return built, nil
}

// lookupComponent resolves rel against the package directory first and the
// project root second.
func (p *Project) lookupComponent(rel string) (component.Component, error) {
	for _, base := range []string{p.PackageDir(), p.Root} {
		dir := filepath.Join(base, filepath.FromSlash(rel))
		exists, isDir, err := pathKind(dir)
		if err != nil {
			return component.Component{}, err
		}
		if !exists || !isDir {
			continue
		}

		c := component.Component{Path: dir, Kind: component.Classify(dir)}
		if r, err := filepath.Rel(p.Root, dir); err == nil {
			c.Rel = filepath.ToSlash(r)
		}
		return c, nil
	}

	return component.Component{}, oerrors.NewNotFoundError(
		fmt.Sprintf("component '%s' not found", rel), p.PackageDir(), "Run 'wip info' to list the components.")
}

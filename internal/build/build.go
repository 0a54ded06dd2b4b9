// Package build drives CMake builds of binary extension modules.
package build

import (
	"context"
	"fmt"

	"github.com/wiptools/wip/internal/component"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/runner"
)

// BuildDir is the CMake build directory, relative to the component.
const BuildDir = component.CMakeBuildDir

// Languages selects the native kinds a build covers.
type Languages struct {
	Cpp bool
	F90 bool
}

// AllLanguages selects every native kind.
var AllLanguages = Languages{Cpp: true, F90: true}

// LanguagesFromFlags applies the rule that no flag means every language.
func LanguagesFromFlags(cpp, f90 bool) Languages {
	if !cpp && !f90 {
		return AllLanguages
	}
	return Languages{Cpp: cpp, F90: f90}
}

// Includes reports whether k is selected.
func (l Languages) Includes(k component.Kind) bool {
	switch k {
	case component.Cpp:
		return l.Cpp
	case component.F90:
		return l.F90
	default:
		return false
	}
}

// Builder builds native components.
type Builder struct {
	Runner    runner.Runner
	Languages Languages
}

// Plan returns the configure, build and install steps for c. Every step
// runs in the component directory and stops the plan on failure.
func (b *Builder) Plan(c component.Component) []runner.Step {
	return []runner.Step{
		{Name: "cmake", Args: []string{"-S", ".", "-B", BuildDir}, Dir: c.Path, OnFailure: runner.Stop},
		{Name: "cmake", Args: []string{"--build", BuildDir}, Dir: c.Path, OnFailure: runner.Stop},
		{Name: "cmake", Args: []string{"--install", BuildDir}, Dir: c.Path, OnFailure: runner.Stop},
	}
}

// Build runs the plan of a single native component.
func (b *Builder) Build(ctx context.Context, c component.Component) error {
	if !c.Kind.IsNative() {
		return fmt.Errorf("%s is a %s, not a binary extension", c.Rel, c.Kind.Label())
	}

	plan := b.Plan(c)
	log := output.ComponentLogger(c.Rel)
	for _, s := range plan {
		log.Debug("planned", "step", s.String())
	}

	title := fmt.Sprintf("Building %s %s", c.Kind.Label(), output.StyleNoun.Render(c.Rel))
	return output.RunTask(title, func() error {
		return runner.RunPlan(ctx, b.Runner, plan)
	})
}

// BuildAll builds, in order, every component whose kind is selected. It
// stops at the first failure and returns the components that were built.
func (b *Builder) BuildAll(ctx context.Context, components []component.Component) ([]component.Component, error) {
	var built []component.Component
	for _, c := range components {
		if !b.Languages.Includes(c.Kind) {
			continue
		}
		if err := b.Build(ctx, c); err != nil {
			return built, err
		}
		built = append(built, c)
	}
	return built, nil
}

package project

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/wiptools/wip/internal/component"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/pyproject"
	"github.com/wiptools/wip/internal/tree"
)

// Missing is displayed for empty metadata values.
const Missing = "--"

// TreeIndent precedes every line of the package structure.
const TreeIndent = "  "

// Info is the metadata reported by wip info.
type Info struct {
	Project     string                `json:"project" yaml:"project"`
	Version     string                `json:"version" yaml:"version"`
	Package     string                `json:"package" yaml:"package"`
	Description string                `json:"description" yaml:"description"`
	Repository  string                `json:"repository" yaml:"repository"`
	Homepage    string                `json:"homepage" yaml:"homepage"`
	Location    string                `json:"location" yaml:"location"`
	Components  []component.Component `json:"components" yaml:"components"`
}

// Info collects the project metadata from pyproject.toml and the
// components of the package. The project is named after its directory.
func (p *Project) Info() (*Info, error) {
	poetry, err := pyproject.Read(p.Root)
	if err != nil {
		return nil, err
	}

	components, err := p.Components()
	if err != nil {
		return nil, err
	}

	location, err := filepath.Abs(p.Root)
	if err != nil {
		return nil, err
	}

	return &Info{
		Project:     filepath.Base(p.Root),
		Version:     poetry.Version,
		Package:     p.PackageName(),
		Description: poetry.Description,
		Repository:  poetry.Repository,
		Homepage:    poetry.Homepage,
		Location:    location,
		Components:  components,
	}, nil
}

func orMissing(s string) string {
	if s == "" {
		return Missing
	}
	return s
}

// WriteText writes the metadata followed by the structure of the package.
func (p *Project) WriteText(w io.Writer, info *Info) error {
	fields := []struct{ label, value string }{
		{"Project", info.Project},
		{"Version", info.Version},
		{"Package", info.Package},
		{"GitHub repo", info.Repository},
		{"Home page", info.Homepage},
		{"Location", info.Location},
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%-12s: %s\n", f.label, orMissing(f.value)); err != nil {
			return err
		}
	}

	heading := fmt.Sprintf("Structure of Python package %s", info.Package)
	if _, err := fmt.Fprintf(w, "\n%s\n", output.StyleHeading.Render(heading)); err != nil {
		return err
	}
	return output.RenderTreeIndent(w, tree.Walk(p.PackageDir(), component.SourceFilter), componentName, TreeIndent)
}

// componentName styles a tree node and labels component directories with
// their kind.
func componentName(n *tree.Node) string {
	name := output.StyledName(n)
	if !n.IsDir || n.IsRoot() {
		return name
	}
	if kind := component.Classify(n.Path); kind != component.None {
		return name + " " + output.StyleDir.Render("["+kind.Label()+"]")
	}
	return name
}

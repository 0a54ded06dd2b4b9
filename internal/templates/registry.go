package templates

import (
	"fmt"
	"sort"
	"strings"
)

// Template names.
const (
	Project         = "project"
	ProjectDocMD    = "project-doc-md"
	ProjectDocRST   = "project-doc-rst"
	ComponentPy     = "component-py"
	ComponentCLI    = "component-cli"
	ComponentCLISub = "component-clisub"
	ComponentCpp    = "component-cpp"
	ComponentF90    = "component-f90"
)

var projectParams = []string{
	"full_name", "email_address", "github_username", "project_name",
	"package_name", "project_short_description", "minimal_python_version",
}

var componentParams = []string{"package_name", "component_name"}

// templates is the internal registry of available templates.
var templates = map[string]Template{
	Project: {
		Name:        Project,
		Description: "Python project skeleton with a package, tests and pyproject.toml",
		Params:      projectParams,
	},
	ProjectDocMD: {
		Name:        ProjectDocMD,
		Description: "Markdown documentation built with mkdocs",
		Params:      []string{"project_name", "package_name", "full_name", "project_short_description"},
	},
	ProjectDocRST: {
		Name:        ProjectDocRST,
		Description: "restructuredText documentation built with sphinx",
		Params:      []string{"project_name", "package_name", "full_name", "project_short_description"},
	},
	ComponentPy: {
		Name:        ComponentPy,
		Description: "Python submodule",
		Params:      componentParams,
	},
	ComponentCLI: {
		Name:        ComponentCLI,
		Description: "Command line interface",
		Params:      componentParams,
	},
	ComponentCLISub: {
		Name:        ComponentCLISub,
		Description: "Command line interface with subcommands",
		Params:      componentParams,
	},
	ComponentCpp: {
		Name:        ComponentCpp,
		Description: "C++ binary extension module built with nanobind",
		Params:      componentParams,
	},
	ComponentF90: {
		Name:        ComponentF90,
		Description: "Modern Fortran binary extension module built with f2py",
		Params:      componentParams,
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns all template names, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package cmdutil provides shared command utilities for the wip commands.
// It centralizes flag group management, project lookup and result output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wiptools/wip/internal/component"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/project"
)

// DocsFlags holds the documentation format flags (init, docs).
type DocsFlags struct {
	MD  bool
	RST bool
}

// AddTo registers the documentation flags on the given cobra command.
func (f *DocsFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.MD, "md", false,
		"Use markdown documentation (mkdocs)")
	cmd.Flags().BoolVar(&f.RST, "rst", false,
		"Use restructuredText documentation (sphinx)")
}

// ComponentFlags holds the component kind flags (add).
type ComponentFlags struct {
	Py     bool
	CLI    bool
	CLISub bool
	Cpp    bool
	F90    bool
}

// AddTo registers one flag per component kind on the given cobra command.
func (f *ComponentFlags) AddTo(cmd *cobra.Command) {
	targets := map[component.Kind]*bool{
		component.Python: &f.Py,
		component.CLI:    &f.CLI,
		component.CLISub: &f.CLISub,
		component.Cpp:    &f.Cpp,
		component.F90:    &f.F90,
	}
	for _, kind := range component.Kinds {
		cmd.Flags().BoolVar(targets[kind], kind.String(), false,
			fmt.Sprintf("Add a %s", kind.Label()))
	}
}

// Kind returns the single selected kind.
func (f *ComponentFlags) Kind() (component.Kind, error) {
	return project.KindFromFlags(f.Py, f.CLI, f.CLISub, f.Cpp, f.F90)
}

// LanguageFlags holds the binary extension language flags (build).
type LanguageFlags struct {
	Cpp bool
	F90 bool
}

// AddTo registers the language flags on the given cobra command.
func (f *LanguageFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Cpp, "cpp", false,
		"Build C++ binary extensions")
	cmd.Flags().BoolVar(&f.F90, "f90", false,
		"Build Modern Fortran binary extensions")
}

// OutputFlag holds the --output flag of reporting commands.
type OutputFlag struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlag) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatText),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

package component

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// layout describes the marker files of a generated directory.
type layout struct {
	Name    string
	Main    string // __main__.py content, "" for absent
	CMake   string // CMakeLists.txt content, "" for absent
	PyFiles int
}

func layoutGen() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf("cli_x", "mod", "cli_", "__pycache__", "_cmake_build", ".hidden", "Cli_y"),
		gen.OneConstOf("", "@click.group()", "@click.command()", "print()"),
		gen.OneConstOf("", "nanobind_add_module(x)", "f2py -c", "LANGUAGES Fortran", "project(x)"),
		gen.IntRange(0, 2),
	).Map(func(v []interface{}) layout {
		return layout{Name: v[0].(string), Main: v[1].(string), CMake: v[2].(string), PyFiles: v[3].(int)}
	})
}

// expectedKind restates the classification rules over a layout.
func expectedKind(l layout) Kind {
	if Excluded(l.Name) {
		return None
	}
	if strings.HasPrefix(l.Name, "cli_") && l.Main != "" {
		if strings.Contains(l.Main, "click.group") {
			return CLISub
		}
		return CLI
	}
	if l.CMake != "" {
		switch {
		case strings.Contains(l.CMake, "nanobind"):
			return Cpp
		case strings.Contains(l.CMake, "f2py"), strings.Contains(l.CMake, "Fortran"):
			return F90
		}
		return None
	}
	if l.Main != "" || l.PyFiles > 0 {
		return Python
	}
	return None
}

func TestClassifyProperties(t *testing.T) {
	base := t.TempDir()
	properties := gopter.NewProperties(nil)

	properties.Property("classification follows marker files", prop.ForAll(
		func(l layout) bool {
			parent, err := os.MkdirTemp(base, "case")
			if err != nil {
				return false
			}
			dir := filepath.Join(parent, l.Name)
			if err := os.Mkdir(dir, 0o755); err != nil {
				return false
			}
			if l.Main != "" {
				if err := os.WriteFile(filepath.Join(dir, EntryPointFile), []byte(l.Main), 0o644); err != nil {
					return false
				}
			}
			if l.CMake != "" {
				if err := os.WriteFile(filepath.Join(dir, CMakeListsFile), []byte(l.CMake), 0o644); err != nil {
					return false
				}
			}
			for i := 0; i < l.PyFiles; i++ {
				name := filepath.Join(dir, string(rune('a'+i))+".py")
				if err := os.WriteFile(name, nil, 0o644); err != nil {
					return false
				}
			}
			return Classify(dir) == expectedKind(l)
		},
		layoutGen(),
	))

	properties.TestingRun(t)
}

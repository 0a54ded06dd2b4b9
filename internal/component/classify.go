package component

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Marker files and build directories.
const (
	EntryPointFile = "__main__.py"
	CMakeListsFile = "CMakeLists.txt"
	CMakeBuildDir  = "_cmake_build"
	PyCacheDir     = "__pycache__"
	CLIPrefix      = "cli_"
)

// Excluded reports whether a directory name is never part of a package tree.
func Excluded(name string) bool {
	return name == PyCacheDir || name == CMakeBuildDir || strings.HasPrefix(name, ".")
}

// Classify returns the kind of the directory at path. Anything that cannot
// be inspected classifies as None.
func Classify(path string) Kind {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() || Excluded(info.Name()) {
		return None
	}

	if strings.HasPrefix(info.Name(), CLIPrefix) {
		if main, err := os.ReadFile(filepath.Join(path, EntryPointFile)); err == nil {
			if bytes.Contains(main, []byte("click.group")) {
				return CLISub
			}
			return CLI
		}
	}

	if cmake, err := os.ReadFile(filepath.Join(path, CMakeListsFile)); err == nil {
		switch {
		case bytes.Contains(cmake, []byte("nanobind")):
			return Cpp
		case bytes.Contains(cmake, []byte("f2py")), bytes.Contains(cmake, []byte("Fortran")):
			return F90
		default:
			return None
		}
	}

	if hasPythonFile(path) {
		return Python
	}
	return None
}

func hasPythonFile(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".py" {
			return true
		}
	}
	return false
}

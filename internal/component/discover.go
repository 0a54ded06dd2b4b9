package component

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wiptools/wip/internal/tree"
)

// Component is a classified directory of a package.
type Component struct {
	// Path is the absolute directory path.
	Path string `json:"-" yaml:"-"`

	// Rel is the path relative to the project root, slash separated.
	Rel string `json:"path" yaml:"path"`

	// Kind is the classification.
	Kind Kind `json:"kind" yaml:"kind"`
}

// Dotted returns the Python import path of the component.
func (c Component) Dotted() string {
	return strings.ReplaceAll(c.Rel, "/", ".")
}

// Name returns the directory name.
func (c Component) Name() string {
	return filepath.Base(c.Path)
}

// DirFilter accepts directories that may hold components.
func DirFilter(_ string, info os.FileInfo) bool {
	return info.IsDir() && !Excluded(info.Name())
}

// sourceExts are the file suffixes shown in package trees.
var sourceExts = map[string]bool{
	".py":  true,
	".cpp": true,
	".f90": true,
	".md":  true,
	".rst": true,
}

// SourceFilter accepts component directories and the source files inside
// them.
func SourceFilter(path string, info os.FileInfo) bool {
	if info.IsDir() {
		return !Excluded(info.Name())
	}
	return sourceExts[strings.ToLower(filepath.Ext(path))]
}

// Discover returns the components below packageDir in tree order. The
// package directory itself is not a candidate. Rel paths are relative to
// the parent of packageDir, the project root.
func Discover(packageDir string) ([]Component, error) {
	abs, err := filepath.Abs(packageDir)
	if err != nil {
		return nil, err
	}
	root := filepath.Dir(abs)

	var found []Component
	for n, err := range tree.Walk(abs, DirFilter) {
		if err != nil {
			return found, err
		}
		if n.IsRoot() {
			continue
		}
		kind := Classify(n.Path)
		if kind == None {
			continue
		}
		rel, err := filepath.Rel(root, n.Path)
		if err != nil {
			return found, err
		}
		found = append(found, Component{Path: n.Path, Rel: filepath.ToSlash(rel), Kind: kind})
	}
	return found, nil
}

// Filter returns the components whose kind is one of kinds.
func Filter(components []Component, kinds ...Kind) []Component {
	var out []Component
	for _, c := range components {
		for _, k := range kinds {
			if c.Kind == k {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

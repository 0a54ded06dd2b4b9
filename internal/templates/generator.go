package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wiptools/wip/internal/output"
)

// ExistsError reports a destination file that would be overwritten.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("file %s already exists", e.Path)
}

// Expand materialises the named template below destDir and returns the
// created paths relative to destDir. Everything is rendered before anything
// is written, so a template error leaves destDir untouched. Without
// Overwrite, an existing destination file is an *ExistsError and nothing is
// written.
func Expand(name, destDir string, params map[string]string, opts Options) ([]string, error) {
	files, err := NewRenderer(params).RenderTemplate(name)
	if err != nil {
		return nil, err
	}

	if !opts.Overwrite {
		for _, f := range files {
			target := filepath.Join(destDir, filepath.FromSlash(f.TargetPath))
			if _, err := os.Lstat(target); err == nil {
				return nil, &ExistsError{Path: target}
			}
		}
	}

	output.Debug("expanding template", "template", name, "target", destDir, "files", len(files))

	created := make([]string, 0, len(files))
	for _, f := range files {
		target := filepath.Join(destDir, filepath.FromSlash(f.TargetPath))

		parent := filepath.Dir(target)
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return created, fmt.Errorf("creating directory %s: %w", parent, err)
		}

		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return created, fmt.Errorf("writing %s: %w", target, err)
		}

		output.Debug("created file", "path", f.TargetPath)
		created = append(created, f.TargetPath)
	}

	return created, nil
}

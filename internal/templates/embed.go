package templates

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// files holds one directory per template. Path segments may reference
// parameters, e.g. files/component-py/{{.component_name}}.
//
//go:embed all:files
var files embed.FS

// TemplateFS is the embedded template tree rooted at the template
// directories.
var TemplateFS fs.FS = mustSub(files, "files")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// ListTemplateFiles returns the unrendered files of a template relative to
// its root, without the .tmpl suffix.
func ListTemplateFiles(name string) ([]string, error) {
	if _, err := Get(name); err != nil {
		return nil, err
	}

	var out []string
	err := fs.WalkDir(TemplateFS, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, name+"/")
		out = append(out, strings.TrimSuffix(rel, ".tmpl"))
		return nil
	})
	return out, err
}

// relPath strips the template root from an embedded path.
func relPath(name, p string) string {
	return strings.TrimPrefix(path.Clean(p), name+"/")
}

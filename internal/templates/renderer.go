package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

// Renderer renders template paths and contents with a parameter set.
// Parameters are referenced as {{.package_name}}; a reference to a missing
// parameter is an error. The toml, yaml and python functions quote a value
// for the file being rendered.
type Renderer struct {
	params map[string]string
}

// NewRenderer creates a renderer for the given parameters.
func NewRenderer(params map[string]string) *Renderer {
	return &Renderer{params: params}
}

// RenderString renders a template string.
func (r *Renderer) RenderString(name, content string) (string, error) {
	if !strings.Contains(content, "{{") {
		return content, nil
	}

	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.params); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderPath renders every segment of a slash-separated path. A segment
// that renders empty is an error.
func (r *Renderer) RenderPath(p string) (string, error) {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		out, err := r.RenderString(p, seg)
		if err != nil {
			return "", err
		}
		if out == "" || strings.Contains(out, "/") {
			return "", fmt.Errorf("path segment %q of %s renders to invalid name %q", seg, p, out)
		}
		segments[i] = out
	}
	return strings.TrimSuffix(path.Join(segments...), ".tmpl"), nil
}

// RenderTemplate renders all files of the named template. Files carrying a
// .tmpl suffix have their content rendered; other files are copied as is.
func (r *Renderer) RenderTemplate(name string) ([]File, error) {
	if _, err := Get(name); err != nil {
		return nil, err
	}

	var out []File
	err := fs.WalkDir(TemplateFS, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(TemplateFS, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		rel := relPath(name, p)
		if strings.HasSuffix(rel, ".tmpl") {
			rendered, err := r.RenderString(rel, string(content))
			if err != nil {
				return err
			}
			content = []byte(rendered)
		}

		target, err := r.RenderPath(rel)
		if err != nil {
			return err
		}

		out = append(out, File{SourcePath: p, TargetPath: target, Content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", name, err)
	}
	return out, nil
}

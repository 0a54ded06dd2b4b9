// Package templates expands the embedded project, documentation and
// component templates.
package templates

// Template describes an embedded template.
type Template struct {
	// Name is the template identifier, e.g. "component-cpp".
	Name string

	// Description explains what the template creates.
	Description string

	// Params lists the parameters the template references.
	Params []string
}

// Options configures template expansion.
type Options struct {
	// Overwrite allows replacing files that already exist.
	Overwrite bool
}

// File is a rendered template file.
type File struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the rendered, slash-separated output path relative to
	// the destination directory, without the .tmpl suffix.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

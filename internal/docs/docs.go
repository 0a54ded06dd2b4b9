// Package docs adds a documentation skeleton to a project and keeps its API
// reference in sync with the project's components.
package docs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wiptools/wip/internal/component"
	"github.com/wiptools/wip/internal/config"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/templates"
)

// Dir is the documentation directory of a project.
const Dir = "docs"

// Format is a documentation markup format.
type Format string

const (
	Markdown Format = "md"
	RST      Format = "rst"
)

// Label returns the human-readable name of the format.
func (f Format) Label() string {
	switch f {
	case Markdown:
		return "markdown"
	case RST:
		return "restructuredText"
	default:
		return string(f)
	}
}

// Template returns the documentation template of the format.
func (f Format) Template() string {
	if f == RST {
		return templates.ProjectDocRST
	}
	return templates.ProjectDocMD
}

// FormatFromFlags resolves the format flags. Markdown wins when both are set.
func FormatFromFlags(md, rst bool) Format {
	switch {
	case md:
		return Markdown
	case rst:
		return RST
	default:
		return ""
	}
}

// Detect returns the format the project is configured for, or "".
func Detect(root string) Format {
	for _, f := range []Format{Markdown, RST} {
		if config.FileExists(filepath.Join(root, Dir, "index."+string(f))) {
			return f
		}
	}
	return ""
}

// Options configures Setup.
type Options struct {
	// Root is the project directory.
	Root string

	// Params is the project parameter set.
	Params config.Params

	// MD and RST are the requested formats.
	MD  bool
	RST bool
}

// Setup adds the documentation skeleton in the requested format and an API
// reference entry for every component. A project that already has
// documentation, or a request without a format, is left unchanged with a
// warning. It returns the format that was set up, or "".
func Setup(opts Options) (Format, error) {
	projectName := opts.Params[config.KeyProjectName]

	if existing := Detect(opts.Root); existing != "" {
		output.Warn(fmt.Sprintf("Project %s is already configured for documentation generation (%s format).",
			projectName, existing.Label()))
		return "", nil
	}

	if opts.MD && opts.RST {
		output.Warn("Both '--md' and '--rst' specified: ignoring '--rst'.")
	}

	format := FormatFromFlags(opts.MD, opts.RST)
	if format == "" {
		output.Warn("No documentation format specified")
		return "", nil
	}

	err := output.RunTask(fmt.Sprintf("Expanding template %s", format.Template()), func() error {
		_, err := templates.Expand(format.Template(), opts.Root, opts.Params, templates.Options{Overwrite: true})
		return err
	})
	if err != nil {
		return "", err
	}

	err = output.RunTask("Adding documentation for components", func() error {
		components, err := component.Discover(filepath.Join(opts.Root, opts.Params[config.KeyPackageName]))
		if err != nil {
			return err
		}
		a := &Augmenter{Root: opts.Root, Format: format}
		for _, c := range components {
			if err := a.Add(c); err != nil {
				return err
			}
		}
		return nil
	})
	return format, err
}

// Augmenter appends API reference entries for components.
type Augmenter struct {
	Root   string
	Format Format
}

// ReferenceFile returns the path of the API reference document.
func (a *Augmenter) ReferenceFile() string {
	return filepath.Join(a.Root, Dir, "api-reference."+string(a.Format))
}

// Stub returns the reference entry for a Python module.
func (a *Augmenter) Stub(c component.Component) string {
	if a.Format == RST {
		return fmt.Sprintf("\n\n.. automodule:: %s\n   :members:", c.Dotted())
	}
	return "\n\n::: " + c.Dotted()
}

// Add documents a single component. Only Python modules get a reference
// entry; other kinds are reported as unsupported.
func (a *Augmenter) Add(c component.Component) error {
	title := fmt.Sprintf("Adding %s documentation (%s)", output.StyleNoun.Render(c.Rel), c.Kind.Label())
	return output.RunTask(title, func() error {
		if c.Kind != component.Python {
			output.Warn(fmt.Sprintf("reference generation is not supported for %s components", c.Kind.Label()))
			return nil
		}
		return appendFile(a.ReferenceFile(), a.Stub(c))
	})
}

func appendFile(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

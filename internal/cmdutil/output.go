package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wiptools/wip/internal/cmdtypes"
	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/project"
)

// WorkDir returns the directory commands operate on.
func WorkDir(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg.WorkDir != "" {
		return cfg.WorkDir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return dir, nil
}

// FindProject finds the project containing the working directory.
func FindProject(cfg *cmdtypes.GlobalConfig) (*project.Project, error) {
	dir, err := WorkDir(cfg)
	if err != nil {
		return nil, err
	}
	p, err := project.Find(dir)
	if err != nil {
		return nil, err
	}
	output.Debug("project found", "root", p.Root, "package", p.PackageName())
	return p, nil
}

// ParseFormat parses the --output flag value; an invalid value is a
// validation error.
func ParseFormat(f *OutputFlag) (output.OutputFormat, error) {
	format, err := output.ParseOutputFormat(f.Format)
	if err != nil {
		return "", oerrors.NewValidationError(err.Error(), "", "")
	}
	return format, nil
}

// WriteResult writes v as structured output, or calls text for the text
// format.
func WriteResult(w io.Writer, format output.OutputFormat, v any, text func(io.Writer) error) error {
	if format == output.FormatText {
		return text(w)
	}
	return output.WriteStructured(w, format, v)
}

// PrintError writes err to w and marks it as printed. An abort is not an
// error and only logs "Interrupted.".
func PrintError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, oerrors.ErrAborted) {
		output.Info("Interrupted.")
		return err
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Printed {
			fmt.Fprintln(w, exitErr.Err)
			exitErr.Printed = true
		}
		return exitErr
	}

	fmt.Fprintln(w, err)
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
}

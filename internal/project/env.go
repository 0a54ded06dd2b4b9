package project

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/wiptools/wip/internal/config"
	"github.com/wiptools/wip/internal/output"
	"github.com/wiptools/wip/internal/runner"
)

// Tools lists the executables wip relies on, in report order.
var Tools = []string{"git", "gh", "cmake", "python3"}

// PythonTool is the interpreter whose version is checked against the
// minimal Python version of a project.
const PythonTool = "python3"

var versionRegex = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// ToolStatus is the outcome of checking one executable.
type ToolStatus struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Status  string `json:"status" yaml:"status"`
}

// EnvReport is the result of an environment check.
type EnvReport struct {
	Tools []ToolStatus `json:"tools" yaml:"tools"`
}

// CheckEnv looks up every tool and queries its version. When p is not nil
// the Python interpreter must satisfy the project's minimal version.
// Missing or outdated tools are logged as warnings, not returned as errors.
func CheckEnv(ctx context.Context, r runner.Runner, p *Project) (*EnvReport, error) {
	var minimal *semver.Constraints
	if p != nil {
		v := p.Params[config.KeyMinimalPythonVersion]
		c, err := semver.NewConstraint(">= " + v)
		if err != nil {
			output.Warn("Cannot check the Python version", "minimal_python_version", v, "err", err)
		} else {
			minimal = c
		}
	}

	report := &EnvReport{}
	for _, name := range Tools {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		status := ToolStatus{Name: name, Status: output.StatusMissing}
		path, err := r.LookPath(name)
		if err != nil {
			output.Warn(fmt.Sprintf("%s not found", name))
			report.Tools = append(report.Tools, status)
			continue
		}
		status.Path = path
		status.Status = output.StatusFound

		out, err := r.Output(ctx, runner.Step{Name: name, Args: []string{"--version"}})
		if err != nil {
			output.Debug("version query failed", "tool", name, "err", err)
		}
		status.Version = versionRegex.FindString(string(out))

		if name == PythonTool && minimal != nil && status.Version != "" {
			if v, err := semver.NewVersion(status.Version); err == nil && !minimal.Check(v) {
				status.Status = output.StatusOld
				output.Warn(fmt.Sprintf("%s %s is older than the minimal Python version of the project (%s)",
					name, status.Version, p.Params[config.KeyMinimalPythonVersion]))
			}
		}
		report.Tools = append(report.Tools, status)
	}
	return report, nil
}

// Table renders the report as a table of tool, status and version.
func (r *EnvReport) Table() *output.Table {
	t := output.NewTable("TOOL", "STATUS", "VERSION", "PATH")
	for _, s := range r.Tools {
		t.Row(s.Name, output.StatusStyle(s.Status).Render(s.Status), orMissing(s.Version), orMissing(s.Path))
	}
	return t
}

// Missing returns the names of tools that were not found.
func (r *EnvReport) Missing() []string {
	var names []string
	for _, s := range r.Tools {
		if s.Status == output.StatusMissing {
			names = append(names, s.Name)
		}
	}
	return names
}

// String summarises the report on one line.
func (r *EnvReport) String() string {
	parts := make([]string, 0, len(r.Tools))
	for _, s := range r.Tools {
		parts = append(parts, s.Name+"="+s.Status)
	}
	return strings.Join(parts, " ")
}

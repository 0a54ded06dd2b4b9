// Package runner executes external commands as explicit, ordered steps.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/wiptools/wip/internal/output"
)

// Policy says what a plan does when a step fails.
type Policy int

const (
	// Stop aborts the plan at the failing step.
	Stop Policy = iota

	// Continue logs the failure and runs the next step.
	Continue
)

// Step is one external command invocation.
type Step struct {
	// Name is the executable, resolved through PATH.
	Name string

	// Args are the command-line arguments.
	Args []string

	// Dir is the working directory. Steps never change the process's own
	// working directory.
	Dir string

	// Env holds extra KEY=VALUE pairs appended to the inherited environment.
	Env []string

	// Stdin is fed to the command's standard input when set.
	Stdin string

	// OnFailure is the plan policy applied when this step fails.
	OnFailure Policy
}

// String renders the step as a shell-like command line.
func (s Step) String() string {
	return strings.TrimSpace(s.Name + " " + strings.Join(s.Args, " "))
}

// Runner executes steps.
type Runner interface {
	// Run executes the step, streaming its output to the terminal.
	Run(ctx context.Context, s Step) error

	// Output executes the step and returns its combined output.
	Output(ctx context.Context, s Step) ([]byte, error)

	// LookPath resolves an executable name.
	LookPath(name string) (string, error)
}

// StepError reports a failed step.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Step.String(), e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExecRunner runs steps as subprocesses.
type ExecRunner struct {
	// Stdout and Stderr receive streamed output from Run. They default to
	// the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner attached to the process's streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) command(ctx context.Context, s Step) *exec.Cmd {
	cmd := exec.CommandContext(ctx, s.Name, s.Args...)
	cmd.Dir = s.Dir
	if len(s.Env) > 0 {
		cmd.Env = append(os.Environ(), s.Env...)
	}
	if s.Stdin != "" {
		cmd.Stdin = strings.NewReader(s.Stdin)
	}
	return cmd
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, s Step) error {
	output.Debug("running", "cmd", s.String(), "dir", s.Dir)

	cmd := r.command(ctx, s)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return &StepError{Step: s, Err: err}
	}
	return nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, s Step) ([]byte, error) {
	output.Debug("running", "cmd", s.String(), "dir", s.Dir)

	var buf bytes.Buffer
	cmd := r.command(ctx, s)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return buf.Bytes(), &StepError{Step: s, Err: err}
	}
	return buf.Bytes(), nil
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// RunPlan executes steps in order. A failing Stop step ends the plan and its
// error is returned. Failures of Continue steps are logged and joined into
// the returned error once the plan completes.
func RunPlan(ctx context.Context, r Runner, steps []Step) error {
	var deferred []error
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := r.Run(ctx, s)
		if err == nil {
			continue
		}
		if s.OnFailure == Continue {
			output.Warn("step failed, continuing", "cmd", s.String(), "err", err)
			deferred = append(deferred, err)
			continue
		}
		return err
	}
	return errors.Join(deferred...)
}

// Package runnertest provides a recording fake of runner.Runner.
package runnertest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/wiptools/wip/internal/runner"
)

// ErrNotFound is returned by LookPath for executables marked missing.
var ErrNotFound = errors.New("executable file not found in $PATH")

// Recorder records every step it is asked to run instead of executing it.
type Recorder struct {
	mu sync.Mutex

	// Steps holds the recorded steps in call order.
	Steps []runner.Step

	// Contexts holds the context each step was run with.
	Contexts []context.Context

	// Failures maps a command line prefix to the error returned for it.
	Failures map[string]error

	// Outputs maps a command line prefix to the output returned by Output.
	Outputs map[string]string

	// Missing lists executables LookPath reports as absent.
	Missing map[string]bool

	// OnRun is invoked for each step before it is recorded, which lets
	// tests emulate side effects such as files written by a tool.
	OnRun func(runner.Step) error
}

// New returns an empty recorder.
func New() *Recorder {
	return &Recorder{
		Failures: map[string]error{},
		Outputs:  map[string]string{},
		Missing:  map[string]bool{},
	}
}

// Fail makes every step whose command line starts with prefix fail with err.
func (r *Recorder) Fail(prefix string, err error) *Recorder {
	r.Failures[prefix] = err
	return r
}

// Respond sets the output returned for steps starting with prefix.
func (r *Recorder) Respond(prefix, out string) *Recorder {
	r.Outputs[prefix] = out
	return r
}

// Hide makes LookPath report name as missing.
func (r *Recorder) Hide(name string) *Recorder {
	r.Missing[name] = true
	return r
}

func (r *Recorder) record(ctx context.Context, s runner.Step) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Steps = append(r.Steps, s)
	r.Contexts = append(r.Contexts, ctx)
	if r.OnRun != nil {
		if err := r.OnRun(s); err != nil {
			return err
		}
	}
	line := s.String()
	for prefix, err := range r.Failures {
		if strings.HasPrefix(line, prefix) {
			return &runner.StepError{Step: s, Err: err}
		}
	}
	return nil
}

// Run implements runner.Runner.
func (r *Recorder) Run(ctx context.Context, s runner.Step) error {
	return r.record(ctx, s)
}

// Output implements runner.Runner.
func (r *Recorder) Output(ctx context.Context, s runner.Step) ([]byte, error) {
	err := r.record(ctx, s)

	r.mu.Lock()
	defer r.mu.Unlock()
	line := s.String()
	for prefix, out := range r.Outputs {
		if strings.HasPrefix(line, prefix) {
			return []byte(out), err
		}
	}
	return nil, err
}

// LookPath implements runner.Runner.
func (r *Recorder) LookPath(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Missing[name] {
		return "", ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

// Commands returns the recorded command lines.
func (r *Recorder) Commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.String()
	}
	return out
}

// Reset forgets the recorded steps.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Steps = nil
	r.Contexts = nil
}

// Package prompt asks the user for missing values, interactively on a
// terminal or line by line from scripted input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	oerrors "github.com/wiptools/wip/internal/errors"
	"github.com/wiptools/wip/internal/output"
)

// ErrInputExhausted is returned when scripted input ends before a question
// was answered.
var ErrInputExhausted = errors.New("no more input to answer prompt")

// Question is a free-text question.
type Question struct {
	// Title is the question text.
	Title string

	// Default is used when the answer is empty.
	Default string

	// Validate checks the final answer, after the default was applied.
	Validate func(string) error
}

// Option is one answer of a choice.
type Option struct {
	Key   string
	Label string
}

// Choice is a question with a fixed set of answers.
type Choice struct {
	Title   string
	Options []Option
	Default string
}

// Prompter asks questions.
type Prompter interface {
	// Ask returns the answer to q.
	Ask(q Question) (string, error)

	// Choose returns the key of the selected option.
	Choose(c Choice) (string, error)
}

// New returns an interactive prompter when in is a terminal and a scripted
// one otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && output.IsInteractive(f) {
		return &Interactive{}
	}
	return NewScripted(in, out)
}

// Scripted reads one answer per line.
type Scripted struct {
	r   *bufio.Reader
	out io.Writer
}

// NewScripted returns a prompter reading answers from in and echoing
// questions to out.
func NewScripted(in io.Reader, out io.Writer) *Scripted {
	if out == nil {
		out = io.Discard
	}
	return &Scripted{r: bufio.NewReader(in), out: out}
}

func (s *Scripted) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputExhausted
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask implements Prompter.
func (s *Scripted) Ask(q Question) (string, error) {
	if q.Default != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", q.Title, q.Default)
	} else {
		fmt.Fprintf(s.out, "%s: ", q.Title)
	}

	answer, err := s.readLine()
	fmt.Fprintln(s.out)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = q.Default
	}
	if q.Validate != nil {
		if err := q.Validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

// Choose implements Prompter.
func (s *Scripted) Choose(c Choice) (string, error) {
	fmt.Fprintln(s.out, c.Title)
	for _, o := range c.Options {
		key := o.Key
		if key == "" {
			key = "enter"
		}
		fmt.Fprintf(s.out, "  [%s] %s\n", key, o.Label)
	}
	return s.Ask(Question{Default: c.Default, Title: "Choice", Validate: c.validate})
}

func (c Choice) validate(answer string) error {
	for _, o := range c.Options {
		if o.Key == answer {
			return nil
		}
	}
	return fmt.Errorf("invalid choice %q", answer)
}

// Interactive asks questions with terminal forms.
type Interactive struct{}

// Ask implements Prompter.
func (Interactive) Ask(q Question) (string, error) {
	var value string
	inp := huh.NewInput().
		Title(q.Title).
		Value(&value).
		Validate(func(v string) error {
			if q.Validate == nil {
				return nil
			}
			v = strings.TrimSpace(v)
			if v == "" {
				v = q.Default
			}
			return q.Validate(v)
		})
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	if err := run(huh.NewGroup(inp)); err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		value = q.Default
	}
	return value, nil
}

// Choose implements Prompter.
func (Interactive) Choose(c Choice) (string, error) {
	value := c.Default
	opts := make([]huh.Option[string], len(c.Options))
	for i, o := range c.Options {
		opts[i] = huh.NewOption(o.Label, o.Key)
	}

	sel := huh.NewSelect[string]().
		Title(c.Title).
		Options(opts...).
		Value(&value)

	if err := run(huh.NewGroup(sel)); err != nil {
		return "", err
	}
	return value, nil
}

func run(g *huh.Group) error {
	err := huh.NewForm(g).WithAccessible(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return oerrors.ErrAborted
	}
	if err != nil {
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

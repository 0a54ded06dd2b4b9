package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether f is a terminal. Prompts read from a
// non-terminal are treated as scripted input.
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

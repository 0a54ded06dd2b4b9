// Package cmdtypes provides shared types for the cmd package and the
// command helpers in cmdutil. It is separate from internal/cmd so that
// cmdutil can depend on it without an import cycle.
package cmdtypes

import (
	"github.com/wiptools/wip/internal/prompt"
	"github.com/wiptools/wip/internal/runner"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is created once per root command and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// ConfigPath is the resolved --config path of the identity file.
	ConfigPath string

	// Verbosity is the number of -v flags.
	Verbosity int

	// WorkDir is the directory commands operate on. Empty means the
	// current directory.
	WorkDir string

	// Runner executes external tools.
	Runner runner.Runner

	// Prompter asks for missing values. Nil means one is created from the
	// command's input stream.
	Prompter prompt.Prompter
}

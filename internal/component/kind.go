// Package component classifies the directories of a generated Python package
// into addable components.
package component

import "fmt"

// Kind is the classification of a package directory.
type Kind int

const (
	// None marks a directory that is not a component.
	None Kind = iota
	// Python is a plain Python module.
	Python
	// CLI is a single-command line interface.
	CLI
	// CLISub is a command line interface with subcommands.
	CLISub
	// Cpp is a C++ binary extension module.
	Cpp
	// F90 is a Modern Fortran binary extension module.
	F90
)

// Kinds lists every component kind, in flag order.
var Kinds = []Kind{Python, CLI, CLISub, Cpp, F90}

// String returns the short name of the kind, which doubles as its flag name.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Python:
		return "py"
	case CLI:
		return "cli"
	case CLISub:
		return "clisub"
	case Cpp:
		return "cpp"
	case F90:
		return "f90"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Label returns the human-readable description of the kind.
func (k Kind) Label() string {
	switch k {
	case Python:
		return "Python module"
	case CLI:
		return "CLI"
	case CLISub:
		return "CLI with subcommands"
	case Cpp:
		return "C++ binary extension"
	case F90:
		return "Modern Fortran binary extension"
	default:
		return ""
	}
}

// IsNative reports whether the kind is a binary extension built with CMake.
func (k Kind) IsNative() bool {
	return k == Cpp || k == F90
}

// IsCLI reports whether the kind is a command line interface.
func (k Kind) IsCLI() bool {
	return k == CLI || k == CLISub
}

// Template returns the name of the template that creates the kind.
func (k Kind) Template() string {
	if k == None {
		return ""
	}
	return "component-" + k.String()
}

// MarshalText encodes the kind as its short name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind returns the kind with the given short name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown component kind %q", s)
}

// Package pyproject reads and edits the poetry section of pyproject.toml.
package pyproject

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the project metadata file.
const FileName = "pyproject.toml"

// Table names edited by this package.
const (
	PoetryTable  = "tool.poetry"
	ScriptsTable = "tool.poetry.scripts"
)

// ErrScriptExists is returned when a script name is already registered.
var ErrScriptExists = errors.New("script already registered")

// Poetry is the [tool.poetry] table.
type Poetry struct {
	Name        string            `toml:"name"`
	Version     string            `toml:"version"`
	Description string            `toml:"description"`
	Repository  string            `toml:"repository"`
	Homepage    string            `toml:"homepage"`
	Scripts     map[string]string `toml:"scripts"`
}

type document struct {
	Tool struct {
		Poetry Poetry `toml:"poetry"`
	} `toml:"tool"`
}

// Read parses dir/pyproject.toml.
func Read(dir string) (*Poetry, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Poetry, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &doc.Tool.Poetry, nil
}

// BlankRemote empties the repository and homepage entries, for projects
// without a remote repository.
func BlankRemote(dir string) error {
	return edit(dir, func(f *file) error {
		if err := f.set(PoetryTable, "repository", ""); err != nil {
			return err
		}
		return f.set(PoetryTable, "homepage", "")
	})
}

// AddScript registers a console script in [tool.poetry.scripts].
func AddScript(dir, name, target string) error {
	return edit(dir, func(f *file) error {
		p, err := parse([]byte(f.String()))
		if err != nil {
			return err
		}
		if _, ok := p.Scripts[name]; ok {
			return fmt.Errorf("%w: %s", ErrScriptExists, name)
		}
		return f.set(ScriptsTable, name, target)
	})
}

// edit applies fn to dir/pyproject.toml and writes the result once it
// still parses.
func edit(dir string, fn func(*file) error) error {
	path := filepath.Join(dir, FileName)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	f := newFile(data)
	if err := fn(f); err != nil {
		return err
	}

	out := f.String()
	if _, err := parse([]byte(out)); err != nil {
		return fmt.Errorf("edited %s is invalid: %w", FileName, err)
	}
	return os.WriteFile(path, []byte(out), info.Mode().Perm())
}

// file is a line-oriented view of a TOML document. Edits keep comments,
// ordering and formatting of untouched lines.
type file struct {
	lines []string
}

func newFile(data []byte) *file {
	s := strings.TrimRight(string(data), "\n")
	return &file{lines: strings.Split(s, "\n")}
}

func (f *file) String() string {
	return strings.Join(f.lines, "\n") + "\n"
}

// tableRange returns the index of the table header and the index one past
// the table's last non-blank line, or -1 when the table is absent.
func (f *file) tableRange(table string) (header, end int) {
	header = -1
	for i, line := range f.lines {
		if strings.TrimSpace(line) == "["+table+"]" {
			header = i
			break
		}
	}
	if header < 0 {
		return -1, -1
	}

	end = header + 1
	for i := header + 1; i < len(f.lines); i++ {
		trimmed := strings.TrimSpace(f.lines[i])
		if strings.HasPrefix(trimmed, "[") {
			break
		}
		if trimmed != "" {
			end = i + 1
		}
	}
	return header, end
}

// set assigns key in table, replacing an existing assignment, appending to
// the table, or creating the table at the end of the document.
func (f *file) set(table, key, value string) error {
	line, err := encodeKeyValue(key, value)
	if err != nil {
		return err
	}

	header, end := f.tableRange(table)
	if header < 0 {
		f.lines = append(f.lines, "", "["+table+"]", line)
		return nil
	}

	for i := header + 1; i < end; i++ {
		if assigns(f.lines[i], key) {
			f.lines[i] = line
			return nil
		}
	}

	f.lines = append(f.lines[:end], append([]string{line}, f.lines[end:]...)...)
	return nil
}

func assigns(line, key string) bool {
	trimmed := strings.TrimSpace(line)
	for _, k := range []string{key, `"` + key + `"`, "'" + key + "'"} {
		if rest, ok := strings.CutPrefix(trimmed, k); ok && strings.HasPrefix(strings.TrimSpace(rest), "=") {
			return true
		}
	}
	return false
}

// encodeKeyValue renders a single TOML assignment.
func encodeKeyValue(key, value string) (string, error) {
	out, err := toml.Marshal(map[string]string{key: value})
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

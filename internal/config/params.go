package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ParamsFile is the name of the per-project parameter file.
const ParamsFile = "wip-cookiecutter.json"

// Project parameter keys beyond the identity keys.
const (
	KeyProjectName          = "project_name"
	KeyPackageName          = "package_name"
	KeyDescription          = "project_short_description"
	KeyMinimalPythonVersion = "minimal_python_version"
)

// Defaults for prompted project parameters.
const (
	DefaultDescription          = "<project_short_description>"
	DefaultMinimalPythonVersion = "3.8"
)

// Params is the resolved parameter set driving template expansion.
type Params map[string]string

// Clone returns a copy of p.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into p, overriding existing keys.
func (p Params) Merge(other Params) Params {
	for k, v := range other {
		p[k] = v
	}
	return p
}

// Keys returns the keys of p, sorted.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks p against the schema ReadParams enforces, so that a
// written parameter file can always be read back.
func (p Params) Validate() error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding parameters: %w", err)
	}
	return ValidateParams(data)
}

// WriteParams validates p and writes it to dir/wip-cookiecutter.json. The
// file is written to a temporary file in dir first and renamed into place.
func WriteParams(dir string, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding parameters: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "."+ParamsFile+".*")
	if err != nil {
		return fmt.Errorf("creating temporary parameter file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}

	target := filepath.Join(dir, ParamsFile)
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("renaming to %s: %w", target, err)
	}
	return nil
}

// ReadParams reads and validates dir/wip-cookiecutter.json. A document that
// violates the schema is returned as ValidationErrors.
func ReadParams(dir string) (Params, error) {
	path := filepath.Join(dir, ParamsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := ValidateParams(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return p, nil
}

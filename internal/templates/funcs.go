package templates

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// funcs quote user text for the file format a template writes. Parameters
// such as the description are free text and may hold quotes or backslashes.
var funcs = template.FuncMap{
	"toml":   tomlString,
	"yaml":   yamlString,
	"python": strconv.Quote,
}

// tomlString returns s as a TOML string literal.
func tomlString(s string) (string, error) {
	out, err := toml.Marshal(map[string]string{"v": s})
	if err != nil {
		return "", fmt.Errorf("encoding %q as TOML: %w", s, err)
	}
	_, value, ok := strings.Cut(strings.TrimSpace(string(out)), "=")
	if !ok {
		return "", fmt.Errorf("encoding %q as TOML: unexpected output %q", s, out)
	}
	return strings.TrimSpace(value), nil
}

// yamlString returns s as a YAML scalar.
func yamlString(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding %q as YAML: %w", s, err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

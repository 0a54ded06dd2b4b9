package templates

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Python identifier validation regex, restricted to ASCII.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var invalidRun = regexp.MustCompile(`[^a-z0-9_]+`)

// ValidateIdentifier checks that name can be imported as a Python module.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("invalid Python identifier %q: must start with a letter or underscore and contain only letters, digits, and underscores", name)
	}

	if isReservedWord(name) {
		return fmt.Errorf("invalid Python identifier %q: cannot use reserved word", name)
	}

	return nil
}

// ValidateProjectName checks a project name before a directory is created
// for it.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q: must be a single directory name", name)
	}

	if err := ValidateIdentifier(PackageName(name)); err != nil {
		return fmt.Errorf("invalid project name %q: %w", name, err)
	}

	return nil
}

// PackageName derives the Python package name of a project: lowercased,
// accents stripped, runs of other characters replaced by an underscore,
// and a leading digit prefixed with an underscore.
func PackageName(projectName string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		projectName,
	)
	if err != nil {
		stripped = projectName
	}

	name := invalidRun.ReplaceAllString(strings.ToLower(stripped), "_")
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}

// isReservedWord checks if a name is a Python keyword.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"False":    true,
		"None":     true,
		"True":     true,
		"and":      true,
		"as":       true,
		"assert":   true,
		"async":    true,
		"await":    true,
		"break":    true,
		"class":    true,
		"continue": true,
		"def":      true,
		"del":      true,
		"elif":     true,
		"else":     true,
		"except":   true,
		"finally":  true,
		"for":      true,
		"from":     true,
		"global":   true,
		"if":       true,
		"import":   true,
		"in":       true,
		"is":       true,
		"lambda":   true,
		"nonlocal": true,
		"not":      true,
		"or":       true,
		"pass":     true,
		"raise":    true,
		"return":   true,
		"try":      true,
		"while":    true,
		"with":     true,
		"yield":    true,
	}
	return reserved[name]
}

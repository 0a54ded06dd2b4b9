package config

import (
	"os"

	"github.com/wiptools/wip/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourcePrompt indicates value was answered interactively.
	SourcePrompt ConfigSource = "prompt"
	// SourceGit indicates value came from the user's git configuration.
	SourceGit ConfigSource = "gitconfig"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Candidate is a value offered by one source.
type Candidate struct {
	Source ConfigSource
	Value  string
}

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Resolve picks the first non-empty candidate. Candidates are given in
// precedence order, highest first. Later non-empty candidates are recorded
// as shadowed.
func Resolve(key string, candidates ...Candidate) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	for _, c := range candidates {
		if c.Value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.Value
			result.Source = c.Source
			continue
		}
		result.Shadowed[c.Source] = c.Value
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) WIP_CONFIG env, (3) ~/.wip/config.json default.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	result := Resolve("config",
		Candidate{Source: SourceFlag, Value: opts.FlagValue},
		Candidate{Source: SourceEnv, Value: os.Getenv(EnvConfig)},
		Candidate{Source: SourceDefault, Value: paths.ConfigFile},
	)

	result.Value, err = ExpandPath(result.Value)
	return result, err
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for wip configuration.
const envPrefix = "WIP"

// Loader handles loading the identity file merged with the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range IdentityKeys {
		_ = v.BindEnv(key, envName(key))
	}

	return &Loader{v: v}
}

// LoadResult is a loaded identity together with where its values came from.
type LoadResult struct {
	// Identity holds the merged file and environment values.
	Identity Identity

	// Path is the expanded config file path.
	Path string

	// Exists reports whether the config file was present.
	Exists bool

	// Sources records SourceEnv or SourceConfig for every non-empty key.
	Sources map[string]ConfigSource

	// Set records the keys present in the file or the environment, empty
	// values included.
	Set map[string]bool
}

// IsSet reports whether key was present in the file or the environment.
func (r *LoadResult) IsSet(key string) bool {
	return r.Set[key]
}

// Load loads the identity from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values; a missing file is
// not an error.
func (l *Loader) Load(configFile string) (*LoadResult, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("json")

	result := &LoadResult{Path: expandedPath, Sources: map[string]ConfigSource{}, Set: map[string]bool{}}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	} else {
		result.Exists = true
	}

	if err := l.v.Unmarshal(&result.Identity); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	for _, key := range IdentityKeys {
		result.Set[key] = l.v.IsSet(key)
		if result.Identity.Get(key) == "" {
			continue
		}
		if os.Getenv(envName(key)) != "" {
			result.Sources[key] = SourceEnv
		} else {
			result.Sources[key] = SourceConfig
		}
	}

	return result, nil
}

// Save writes the identity to configFile if it does not exist yet. An
// existing file is never modified; created reports whether it was written.
func Save(configFile string, id Identity) (created bool, err error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, fmt.Errorf("expanding config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	for _, key := range IdentityKeys {
		v.Set(key, id.Get(key))
	}

	if err := v.SafeWriteConfigAs(expandedPath); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return false, nil
		}
		return false, fmt.Errorf("writing config file %s: %w", expandedPath, err)
	}
	return true, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}

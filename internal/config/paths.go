package config

import (
	"os"
	"path/filepath"
)

// Environment variables overriding default locations.
const (
	EnvConfig         = "WIP_CONFIG"
	EnvCredentialsDir = "WIP_CREDENTIALS_DIR"
)

// Paths contains standard filesystem paths for wip.
type Paths struct {
	// ConfigFile is the path to the identity file (~/.wip/config.json).
	ConfigFile string

	// CredentialsDir holds personal access tokens (~/.wiptools).
	CredentialsDir string

	// HomeDir is the wip home directory (~/.wip).
	HomeDir string
}

// DefaultPaths returns the default paths for wip.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	wipHome := filepath.Join(homeDir, ".wip")

	return &Paths{
		ConfigFile:     filepath.Join(wipHome, "config.json"),
		CredentialsDir: filepath.Join(homeDir, ".wiptools"),
		HomeDir:        wipHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If WIP_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return ExpandPath(envPath)
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetCredentialsDir returns the directory holding personal access tokens.
// If WIP_CREDENTIALS_DIR is set, it takes precedence.
func GetCredentialsDir() (string, error) {
	if envPath := os.Getenv(EnvCredentialsDir); envPath != "" {
		return ExpandPath(envPath)
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.CredentialsDir, nil
}

// CredentialFile returns the standard location of the personal access token
// of a GitHub user.
func CredentialFile(githubUsername string) (string, error) {
	dir, err := GetCredentialsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, githubUsername+".pat"), nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

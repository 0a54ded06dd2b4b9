// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wiptools/wip/internal/config"
)

// Isolate points every user-level location wip reads or writes (home
// directory, git config, identity file, credentials) at a fresh temporary
// home directory and clears identity overrides from the environment. It
// returns the home directory.
func Isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvCredentialsDir, "")
	for _, key := range config.IdentityKeys {
		t.Setenv("WIP_"+strings.ToUpper(key), "")
	}
	return home
}

// WriteIdentity writes an identity file for Jane Doe with the given GitHub
// username to the default location below home.
func WriteIdentity(t *testing.T, home, githubUsername string) {
	t.Helper()
	path := filepath.Join(home, ".wip", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	data := `{"full_name": "Jane Doe", "email_address": "jane@example.com", "github_username": "` + githubUsername + `"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write identity: %v", err)
	}
}

// WriteFile writes content to dir/rel, creating parent directories.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitIdentity(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))

	content := `[core]
	editor = vim
[User]
	name = Jane Doe
	email = jane@example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(content), 0o644))

	name, email := GitIdentity()
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "jane@example.com", email)
}

func TestGitIdentity_XDGFallback(t *testing.T) {
	home := t.TempDir()
	xdg := filepath.Join(home, "xdg")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte("[user]\n\tname = Home Name\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "git", "config"), []byte("[user]\n\temail = xdg@example.com\n"), 0o644))

	name, email := GitIdentity()
	assert.Equal(t, "Home Name", name)
	assert.Equal(t, "xdg@example.com", email)
}

func TestGitIdentity_NoConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	name, email := GitIdentity()
	assert.Empty(t, name)
	assert.Empty(t, email)
}

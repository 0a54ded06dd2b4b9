package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// GitIdentity returns user.name and user.email from the user's global git
// configuration (~/.gitconfig, then $XDG_CONFIG_HOME/git/config). Missing
// files or keys yield empty strings.
func GitIdentity() (name, email string) {
	for _, path := range gitConfigFiles() {
		n, e, err := readGitIdentity(path)
		if err != nil {
			continue
		}
		if name == "" {
			name = n
		}
		if email == "" {
			email = e
		}
		if name != "" && email != "" {
			break
		}
	}
	return name, email
}

func gitConfigFiles() []string {
	var files []string
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".gitconfig"))
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdg = filepath.Join(home, ".config")
		}
	}
	if xdg != "" {
		files = append(files, filepath.Join(xdg, "git", "config"))
	}
	return files
}

// readGitIdentity loads the [user] section of a git config file.
func readGitIdentity(path string) (name, email string, err error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", "", err
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:         true,
		IgnoreInlineComment: true,
		AllowBooleanKeys:    true,
	}, path)
	if err != nil {
		return "", "", err
	}

	user := cfg.Section("user")
	return user.Key("name").String(), user.Key("email").String(), nil
}

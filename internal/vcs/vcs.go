// Package vcs plans the git and GitHub CLI invocations that put a new
// project under version control.
package vcs

import (
	"fmt"
	"strings"

	"github.com/wiptools/wip/internal/runner"
)

// Visibility of the remote GitHub repository.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
	None    Visibility = "none"
)

// ValidVisibilities returns the accepted visibility names.
func ValidVisibilities() []string {
	return []string{string(Public), string(Private), string(None)}
}

// ParseVisibility parses a visibility name case-insensitively.
func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(s))); v {
	case Public, Private, None:
		return v, nil
	default:
		return "", fmt.Errorf("--remote-visibility=%s is not a valid option; valid options are: %s",
			s, strings.Join(ValidVisibilities(), ", "))
	}
}

// Author is the identity recorded in commits.
type Author struct {
	Name  string
	Email string
}

// env returns the git author and committer variables for a.
func (a Author) env() []string {
	var env []string
	if a.Name != "" {
		env = append(env, "GIT_AUTHOR_NAME="+a.Name, "GIT_COMMITTER_NAME="+a.Name)
	}
	if a.Email != "" {
		env = append(env, "GIT_AUTHOR_EMAIL="+a.Email, "GIT_COMMITTER_EMAIL="+a.Email)
	}
	return env
}

// InitialCommitMessage is the message of the first commit of a project.
func InitialCommitMessage(projectName string) string {
	return "Initial commit from wip init " + projectName
}

// LocalRepoSteps creates a repository in dir on branch main and commits
// everything in it.
func LocalRepoSteps(dir, projectName string, author Author) []runner.Step {
	env := author.env()
	return []runner.Step{
		{Name: "git", Args: []string{"init", "--initial-branch=main"}, Dir: dir},
		{Name: "git", Args: []string{"add", "-A"}, Dir: dir},
		{Name: "git", Args: []string{"commit", "-m", InitialCommitMessage(projectName)}, Dir: dir, Env: env},
	}
}

// RemoteRepoSteps logs the GitHub CLI in with token and creates a remote
// repository from dir, pushing the local history.
func RemoteRepoSteps(dir, token string, visibility Visibility) []runner.Step {
	return []runner.Step{
		{Name: "gh", Args: []string{"auth", "login", "--with-token"}, Dir: dir, Stdin: token},
		{Name: "gh", Args: []string{"repo", "create", "--source", ".", "--" + string(visibility), "--push"}, Dir: dir},
	}
}

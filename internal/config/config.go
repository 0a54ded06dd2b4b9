// Package config provides the global identity configuration and the
// per-project parameter set.
package config

// Identity keys. They are also the keys of the project parameter set.
const (
	KeyFullName       = "full_name"
	KeyEmailAddress   = "email_address"
	KeyGithubUsername = "github_username"
)

// IdentityKeys lists the identity keys in prompt order.
var IdentityKeys = []string{KeyFullName, KeyEmailAddress, KeyGithubUsername}

// Required reports whether an identity key must have a non-empty value. An
// empty GitHub username is a valid answer meaning no remote repositories.
func Required(key string) bool {
	return key != KeyGithubUsername
}

// Identity is the user identity shared by all projects.
// Loaded from ~/.wip/config.json; WIP_FULL_NAME, WIP_EMAIL_ADDRESS and
// WIP_GITHUB_USERNAME override file values.
type Identity struct {
	// FullName is used as author name in generated files and commits.
	FullName string `mapstructure:"full_name" json:"full_name"`

	// EmailAddress is used as author email in generated files and commits.
	EmailAddress string `mapstructure:"email_address" json:"email_address"`

	// GithubUsername selects the account remote repositories are created
	// for. Empty means no remote repositories.
	GithubUsername string `mapstructure:"github_username" json:"github_username"`
}

// Get returns the value of an identity key.
func (i *Identity) Get(key string) string {
	switch key {
	case KeyFullName:
		return i.FullName
	case KeyEmailAddress:
		return i.EmailAddress
	case KeyGithubUsername:
		return i.GithubUsername
	default:
		return ""
	}
}

// Set assigns the value of an identity key. Unknown keys are ignored.
func (i *Identity) Set(key, value string) {
	switch key {
	case KeyFullName:
		i.FullName = value
	case KeyEmailAddress:
		i.EmailAddress = value
	case KeyGithubUsername:
		i.GithubUsername = value
	}
}

// Params returns the identity as parameter set entries.
func (i *Identity) Params() Params {
	return Params{
		KeyFullName:       i.FullName,
		KeyEmailAddress:   i.EmailAddress,
		KeyGithubUsername: i.GithubUsername,
	}
}

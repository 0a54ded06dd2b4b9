// Package version provides version information for the wip CLI.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version, without a leading "v".
	Version = "0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   strings.TrimPrefix(Version, "v"),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns the version banner.
func (i Info) String() string {
	return fmt.Sprintf("wip CLI v%s", i.Version)
}

// Details returns the banner followed by build information.
func (i Info) Details() string {
	return fmt.Sprintf("%s\n  Commit:  %s\n  Built:   %s\n  Go:      %s",
		i.String(), i.GitCommit, i.BuildDate, i.GoVersion)
}

// Package version provides build information for colorsift.
// Values can be injected with -ldflags; anything left unset falls back to
// the module build info embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// Version is the current version of the application
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildDate is when the binary was built
	BuildDate = "unknown"
	// Modified indicates if the source tree was modified (string: "true" or "false")
	Modified = "false"
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Modified  string `json:"modified"`
}

// GetVersion returns the version information
func GetVersion() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Modified:  Modified,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && semver.IsValid(bi.Main.Version) {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value
		}
	}
	return info
}

// Canonical returns the version in canonical semver form (vMAJOR.MINOR.PATCH),
// or the raw string for non-semver builds such as "dev".
func Canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if c := semver.Canonical(v); c != "" {
		return c
	}
	return strings.TrimPrefix(v, "v")
}

// GetVersionString returns a detailed, single line version string
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("colorsift has version %s built with %s from %s (%s, modified: %s) on %s",
		Canonical(info.Version),
		info.GoVersion,
		info.GitCommit,
		info.Platform,
		info.Modified,
		info.BuildDate,
	)
}

// GetShortVersionString returns a short version string
func GetShortVersionString() string {
	info := GetVersion()
	date := info.BuildDate
	if len(date) >= len("2006-01-02") && date != "unknown" {
		date = date[:len("2006-01-02")]
	}
	return fmt.Sprintf("colorsift version %s (%s)", Canonical(info.Version), date)
}

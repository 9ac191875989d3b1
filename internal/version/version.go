// Package version reports which identicon build is running. The values are
// stamped by the release build through -ldflags -X and stay at their
// placeholders for local builds.
package version

import (
	"fmt"
	"runtime"
)

// Stamped at release time, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/identicon/internal/version.Version=1.0.0" ./cmd/identicon
var (
	// Version is the release tag of the identicon binary.
	Version = "dev"

	// Commit is the source revision the binary was built from.
	Commit = "unknown"

	// Date is when the binary was built, in RFC3339.
	Date = "unknown"

	// GoVersion is the toolchain that compiled the binary.
	GoVersion = runtime.Version()
)

// Info is the build metadata printed by "identicon version".
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo collects the build metadata.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Stamped reports whether the release build injected commit and date.
func Stamped() bool {
	return Commit != "unknown" && Date != "unknown"
}

// String returns the line shown by "identicon version" and "identicon --version".
func String() string {
	info := GetInfo()
	if !Stamped() {
		return fmt.Sprintf("identicon %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("identicon %s (commit %s, built %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short returns only the release tag.
func Short() string {
	return Version
}

// shortCommit abbreviates a commit hash to 8 characters.
func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

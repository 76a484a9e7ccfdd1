// Package version provides build version information for lnedit.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/jpl-au/lnedit/internal/version.Version=v1.0.0 \
//	  -X github.com/jpl-au/lnedit/internal/version.GitCommit=abc123 \
//	  -X github.com/jpl-au/lnedit/internal/version.BuildTime=2026-01-15T10:30:00Z"
package version

import (
	"fmt"
	"runtime"
)

// Build information. Set via ldflags at build time.
var (
	Version   = "dev"     // Version tag (e.g., "v1.0.0")
	GitCommit = "unknown" // Short git commit hash
	BuildTime = "unknown" // RFC3339 build timestamp
)

// Info holds structured version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats version info for human-readable output.
func (i Info) String() string {
	return fmt.Sprintf("lnedit %s\ncommit:     %s\nbuilt:      %s\ngo version: %s\nplatform:   %s\n",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}

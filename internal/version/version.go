// Package version provides build-time version information for the vtable
// binary. The variables are set via ldflags during build.
package version

import (
	"fmt"
	"runtime"
)

// Module is the import path the binary is built from.
const Module = "github.com/ryanrauch/restaurant-ai-landing"

// These variables are set at build time via -ldflags
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// GitCommit is the short git commit hash
	GitCommit = "unknown"

	// BuildTime is the build timestamp in RFC3339 format
	BuildTime = "unknown"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Module    string `json:"module"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Info collects the ldflags values and the runtime the binary was built with.
func Info() VersionInfo {
	return VersionInfo{
		Module:    Module,
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String is the one-line banner printed by the version command.
func (v VersionInfo) String() string {
	return fmt.Sprintf("vtable %s (commit %s, built %s)", v.Version, v.GitCommit, v.BuildTime)
}

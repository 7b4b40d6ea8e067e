package lrc

import "runtime/debug"

// Version is the semantic version of the lrc library.
const Version = "0.1.0"

// VersionInfo describes the library build.
type VersionInfo struct {
	// Version is the semantic version (e.g., "0.1.0")
	Version string
	// GitCommit is the VCS revision the binary was built from, when the
	// build recorded one
	GitCommit string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and GoVersion are read from the build info the Go toolchain
// embeds in binaries; they are empty when no build info is available (for
// example under some test harnesses).
func GetVersionInfo() VersionInfo {
	info := VersionInfo{Version: Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			info.GitCommit = s.Value
			break
		}
	}

	return info
}

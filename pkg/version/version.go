// Package version carries build information injected through -ldflags.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the released version of the scanreport binary.
var Version = "dev"

// Commit is the Git hash the binary was built from.
var Commit = "<unknown>"

// String renders the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("scanreport %s (commit %s, %s)", Version, resolveCommit(), goVersion())
}

func resolveCommit() string {
	if Commit != "<unknown>" {
		return Commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && setting.Value != "" {
			return setting.Value
		}
	}

	return Commit
}

func goVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown go"
	}

	return info.GoVersion
}

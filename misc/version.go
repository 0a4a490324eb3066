// Package misc keeps small helpers which do not belong anywhere else.
package misc

import (
	"runtime/debug"
)

const appName = "fms"

// GetAppName returns short program name used for file naming and reporting.
func GetAppName() string {
	return appName
}

// GetVersion returns main module version as recorded in build info.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns vcs revision recorded in build info, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// Package misc keeps build identification helpers used across the program.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "sbc"

// GetAppName returns short program name used for logs, reports and temporary files.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return nil
})

// GetVersion returns module version recorded during the build.
func GetVersion() string {
	bi := buildInfo()
	if bi == nil || bi.Main.Version == "" || bi.Main.Version == "(devel)" {
		return "development"
	}
	return bi.Main.Version
}

// GetGitHash returns VCS revision recorded during the build.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return "unknown"
}

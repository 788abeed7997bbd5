package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string that surfaces build metadata.
// Binaries built with `go install` and no ldflags fall back to the module version.
func Info() string {
	return format(Version, Commit, Date, readBuildInfo)
}

var readBuildInfo = debug.ReadBuildInfo

func format(version, commit, date string, buildInfo func() (*debug.BuildInfo, bool)) string {
	if version == "dev" {
		if info, ok := buildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

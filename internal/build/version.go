// Package build provides version and build information for wintoast.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Summary returns a one-line description of the build, e.g.
// "wintoast dev (unknown, built unknown, go1.25.1)". Release builds omit the
// commit and date when they were not stamped.
func Summary() string {
	if IsDevBuild() || Commit == "unknown" {
		return fmt.Sprintf("wintoast %s (%s)", Version, runtime.Version())
	}
	return fmt.Sprintf("wintoast %s (%s, built %s, %s)", Version, Commit, BuildDate, runtime.Version())
}

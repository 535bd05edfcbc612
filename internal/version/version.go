// Package version provides version information for the teletype CLI.
package version

import "fmt"

// Version is set via ldflags during build.
var Version = "dev"

// TemplateVersion is bumped when the generated Ruby sources change shape,
// so reports from different builds can be told apart.
const TemplateVersion = 1

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// String returns the version with the template revision, e.g. "dev (templates v1)".
func String() string {
	return fmt.Sprintf("%s (templates v%d)", Version, TemplateVersion)
}

// Package version provides build-time version information.
package version

import "fmt"

// Set at build time via -ldflags "-X".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info renders the one-line version banner.
func Info() string {
	return fmt.Sprintf("sui version %s (commit: %s, built: %s)", Version, Commit, Date)
}

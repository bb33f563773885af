// Package buildinfo holds version metadata stamped in at release time.
package buildinfo

// Set via -ldflags at build time; defaults cover local builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Package buildinfo holds the version stamped into panelcut at build time.
//
//	go build -ldflags "-X github.com/footbagworks/panelcut/pkg/buildinfo.Version=v0.4.0 \
//	    -X github.com/footbagworks/panelcut/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/footbagworks/panelcut/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the multi-line version report.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Tag identifies the build in cache keys, so artifacts rendered by a
// different build are never reused.
func Tag() string {
	return Version + "+" + Commit
}

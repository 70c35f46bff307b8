// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/movload/internal/version.Version=0.2.1"
package version

import "fmt"

var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildTime = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// String returns the one-line build description printed by `movload version`.
func String() string {
	return fmt.Sprintf("movload v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}

// Package version holds build metadata, set with -ldflags at release time:
//
//	go build -ldflags "-X github.com/mj1618/forms-cli/internal/version.Version=v0.3.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// String formats the metadata for --version output.
func String() string {
	return Version + " (commit: " + Commit + ", built: " + BuildDate + ")"
}

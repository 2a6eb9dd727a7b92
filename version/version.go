// Package version provides build version information embedding.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0"
package version

import "runtime/debug"

// Version is set at build time using -ldflags. It falls back to the
// module version recorded in build info when built as a dependency.
var Version = "dev"

// Get returns the effective version string.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

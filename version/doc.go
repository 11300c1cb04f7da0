// Package version provides version information and build metadata for edgeshard.
//
// Version, commit, and build date can be injected at build time via
// -ldflags "-X github.com/blueke/edgeshard/version.Version=v1.0.0 ...";
// otherwise values are recovered at runtime from debug.ReadBuildInfo().
package version

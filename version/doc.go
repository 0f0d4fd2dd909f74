// Package version provides version information and build metadata for
// cassdiag.
//
// It supports compile-time version injection via -ldflags:
//
//	-ldflags "-X github.com/opskit/cassdiag/version.Version=v1.0.0"
//
// and falls back to Go's build info for development builds.
package version

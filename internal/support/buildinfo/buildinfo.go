// Package buildinfo exposes the version stamped at build time.
package buildinfo

// Version is overridden at release time via
//
//	-ldflags "-X berth/internal/support/buildinfo.Version=v1.2.3"
var Version = "dev"

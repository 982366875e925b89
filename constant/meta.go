// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths and CLI branding.
	App = "vidplay"

	// Title is the human readable application name shown in the about overlay.
	Title = "Simple Video Player"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// License is the SPDX identifier of the application license.
	License = "GPL-3.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Package constant defines immutable application-level identifiers.
package constant

const (
	// Stylepick is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Stylepick = "stylepick"

	// Version is the current application semantic version string.
	Version = "0.2.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

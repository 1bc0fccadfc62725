// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Interactive orrery: time stepping, frame toggle, body focus HUD
// 0.1.0 - Initial release: Keplerian element tables, position pipeline, CLI

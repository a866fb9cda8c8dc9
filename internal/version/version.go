// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - TV set, showcase videos, resume panel, JSON scene catalogs
// 0.2.0 - Click-wheel player with menu pages and rotary gesture
// 0.1.0 - Initial release: orbiting bodies, fly-to camera, headless summary

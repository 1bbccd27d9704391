// internal/version/version.go
package version

// Version is stamped manually on release.
const Version = "0.2.0"

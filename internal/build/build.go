// Package build carries the version stamped into the desk binary.
package build

// Version is reported by "desk version" and "desk --version". Release builds
// set it with -ldflags "-X go.trai.ch/desk/internal/build.Version=<tag>".
var Version = "dev"

// Package version holds build metadata of the config-property CLI.
//
// Version, Commit and BuildTime are set with -ldflags at build time. Full
// also reports the marker type and hash seed, so builds can be checked for
// compatible markers.
package version

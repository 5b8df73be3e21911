package version

import (
	"fmt"

	"github.com/oshokin/config-property/internal/property"
)

var (
	// Version is the semantic version, overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA, or "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns the semantic version.
func Short() string {
	return Version
}

// Full returns the build metadata followed by the marker type this build
// resolves and its hash seed, the hash of the marker with an empty name.
// Two builds with equal seeds produce interchangeable markers.
func Full() string {
	return fmt.Sprintf("config-property %s\ncommit: %s\nbuilt: %s\nmarker: %s\nhash seed: %d",
		Version, Commit, BuildTime, property.MarkerType(), property.New("").HashCode())
}

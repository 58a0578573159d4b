package mkdirs

import "github.com/giantswarm/mkdirs/internal/core"

// Strategy selects the algorithm used to create missing directories.
//
// Strategy is a type alias (not a named type) so that the underlying
// [core.Strategy] methods are part of the public API:
//
//   - IsValid reports whether the value is a recognized strategy.
//   - String returns the strategy name (implements [fmt.Stringer]).
//
// Audit: new methods added to core.Strategy automatically become part of the
// public API through this alias.
type Strategy = core.Strategy

const (
	// StrategySegmentWalk starts at the volume root and stats each segment
	// in turn, creating the missing ones. A segment that appears between the
	// stat and the mkdir is re-checked. This is the default strategy.
	StrategySegmentWalk = core.StrategySegmentWalk

	// StrategyRetry tries the target first. When its parent is missing it
	// creates the parent the same way and then retries the target once.
	// Directories that already exist cost a single mkdir call, which suits
	// filesystems where stat is expensive.
	StrategyRetry = core.StrategyRetry
)

// Platform is the path-rule family the resolver applies. Like Strategy it is
// a type alias exposing IsValid and String.
type Platform = core.Platform

const (
	// PlatformPOSIX accepts every byte except NUL in path names.
	PlatformPOSIX = core.PlatformPOSIX

	// PlatformWindows additionally rejects <>:"|?* below the volume root.
	PlatformWindows = core.PlatformWindows
)

// HostPlatform returns the platform family of the running operating system.
func HostPlatform() Platform {
	return core.HostPlatform()
}

// Compile-time checks that the aliased types keep the methods documented
// above.
var (
	_ interface {
		IsValid() bool
		String() string
	} = Strategy(0)
	_ interface {
		IsValid() bool
		String() string
	} = Platform(0)
)

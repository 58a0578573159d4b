package mkdirs

import "github.com/giantswarm/mkdirs/internal/core"

// Default configuration values used when the corresponding option is not
// given.
const (
	// DefaultMode is the mode requested for new directories before the
	// process umask is applied. It is overridden by WithMode.
	DefaultMode = core.DefaultMode

	// DefaultStrategy walks the target from the volume root downwards.
	DefaultStrategy = StrategySegmentWalk

	// DefaultConcurrency places no limit on the number of directories
	// EnsureAll creates at once.
	DefaultConcurrency = 0
)

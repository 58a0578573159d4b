package core

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
)

// Strategy selects the algorithm Build uses to create missing segments.
type Strategy int

const (
	// StrategySegmentWalk walks the target from its volume root downward,
	// stat-ing every segment and creating the ones that are missing. It never
	// backtracks and reports a colliding file the moment it reaches it.
	StrategySegmentWalk Strategy = iota

	// StrategyRetry attempts to create the target directly. When the parent
	// is missing it creates the parent first (same loop) and retries the
	// child once. It needs no existence check per segment, so it suits
	// backends where Mkdir is cheap and Stat is not.
	StrategyRetry
)

// IsValid reports whether s is a recognized Strategy value.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategySegmentWalk, StrategyRetry:
		return true
	default:
		return false
	}
}

// String returns the name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategySegmentWalk:
		return "StrategySegmentWalk"
	case StrategyRetry:
		return "StrategyRetry"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Platform identifies the path rules Resolve validates against.
type Platform int

const (
	// PlatformPOSIX accepts every byte except NUL in a path segment; the
	// OS reports anything it rejects.
	PlatformPOSIX Platform = iota

	// PlatformWindows rejects the reserved characters < > : " | ? * anywhere
	// below the root prefix.
	PlatformWindows
)

// IsValid reports whether p is a recognized Platform value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformPOSIX, PlatformWindows:
		return true
	default:
		return false
	}
}

// String returns the name of the platform family.
func (p Platform) String() string {
	switch p {
	case PlatformPOSIX:
		return "PlatformPOSIX"
	case PlatformWindows:
		return "PlatformWindows"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// HostPlatform returns the platform family of the running process.
func HostPlatform() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}
	return PlatformPOSIX
}

// DefaultMode is the permission set a created directory asks for before the
// file-creation mask is removed.
const DefaultMode fs.FileMode = 0o777

// ModeBits are the bits a caller may pass as a directory mode.
const ModeBits = fs.ModePerm | fs.ModeSetuid | fs.ModeSetgid | fs.ModeSticky

// Config holds the settings for one Ensure call. A Config is built fresh for
// every call and never mutated once handed to Ensure.
type Config struct {
	// Cwd is the base for relative paths. Empty means the process working
	// directory at call time.
	Cwd string

	// Mode, when set, is used verbatim for every created segment.
	Mode *fs.FileMode

	// Umask, when set, replaces the process file-creation mask in the
	// default mode computation. Ignored when Mode is set.
	Umask *fs.FileMode

	Platform Platform
	Strategy Strategy
	FS       FS

	// Concurrency bounds how many paths EnsureAll creates at once.
	// 0 means unlimited.
	Concurrency int
}

// Perm returns the mode for newly created segments: Mode when set, otherwise
// DefaultMode minus the file-creation mask. The process mask is queried at
// most once per Perm call.
func (c Config) Perm() fs.FileMode {
	if c.Mode != nil {
		return *c.Mode
	}
	mask := fs.FileMode(0)
	if c.Umask != nil {
		mask = *c.Umask
	} else {
		mask = ProcessUmask()
	}
	return DefaultMode &^ mask
}

// Validate checks all Config invariants and reports every violation at once.
func (c Config) Validate() error {
	var errs []error

	if c.FS == nil {
		errs = append(errs, errors.New("filesystem must not be nil"))
	}
	if c.Mode != nil && *c.Mode&^ModeBits != 0 {
		errs = append(errs, fmt.Errorf("mode must only contain permission bits, got %v", *c.Mode))
	}
	if c.Umask != nil && *c.Umask&^fs.ModePerm != 0 {
		errs = append(errs, fmt.Errorf("umask must only contain permission bits, got %v", *c.Umask))
	}
	if !c.Platform.IsValid() {
		errs = append(errs, fmt.Errorf("invalid platform: %v", c.Platform))
	}
	if !c.Strategy.IsValid() {
		errs = append(errs, fmt.Errorf("invalid strategy: %v", c.Strategy))
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}

	return errors.Join(errs...)
}

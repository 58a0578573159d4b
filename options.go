package mkdirs

import (
	"fmt"
	"io/fs"

	"github.com/giantswarm/mkdirs/internal/core"
)

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("mkdirs: %s must not be empty", name))
	}
}

// requirePermBits panics if m carries anything other than permission bits.
func requirePermBits(name string, m, allowed fs.FileMode) {
	if m&^allowed != 0 {
		panic(fmt.Sprintf("mkdirs: %s must only contain permission bits, got %v", name, m))
	}
}

// Option configures a single Ensure, EnsureParent, EnsureAsync or EnsureAll
// call. Options are applied to a fresh configuration on every call.
//
// Several With* functions panic on invalid input. Option values are usually
// constants, so an invalid value is a programmer error rather than a runtime
// condition, in the same way as [regexp.MustCompile].
type Option func(*config)

// WithCwd sets the directory relative paths are resolved against. A relative
// dir is itself resolved against the process working directory when the
// call runs.
//
// Default: the process working directory.
//
// Panics if dir is empty.
func WithCwd(dir string) Option {
	requireNonEmpty("working directory", dir)
	return func(c *config) {
		c.Cwd = dir
	}
}

// WithMode sets the permission bits requested for every directory the call
// creates. The operating system may still apply the process umask. A mode of
// 0 is honored.
//
// Default: DefaultMode minus the process umask.
//
// Panics if perm has bits other than permission, setuid, setgid and sticky.
func WithMode(perm fs.FileMode) Option {
	requirePermBits("mode", perm, core.ModeBits)
	return func(c *config) {
		c.Mode = &perm
	}
}

// WithUmask sets the file-creation mask used to derive the default mode
// instead of querying the process. It has no effect together with WithMode.
//
// Panics if mask has bits other than fs.ModePerm.
func WithUmask(mask fs.FileMode) Option {
	requirePermBits("umask", mask, fs.ModePerm)
	return func(c *config) {
		c.Umask = &mask
	}
}

// WithPlatform sets the platform family whose path rules the resolver
// applies. PlatformWindows rejects the reserved characters <>:"|?* below the
// volume root.
//
// Default: HostPlatform().
//
// Panics if p is not a recognized platform.
func WithPlatform(p Platform) Option {
	if !p.IsValid() {
		panic(fmt.Sprintf("mkdirs: invalid platform: %v", p))
	}
	return func(c *config) {
		c.Platform = p
	}
}

// WithFS sets the filesystem directories are created on.
//
// Default: OSFS.
//
// Panics if fsys is nil.
func WithFS(fsys FS) Option {
	if fsys == nil {
		panic("mkdirs: filesystem must not be nil")
	}
	return func(c *config) {
		c.FS = fsys
	}
}

// WithStrategy sets the algorithm used to create the missing segments.
//
// Default: DefaultStrategy.
//
// Panics if s is not a recognized strategy.
func WithStrategy(s Strategy) Option {
	if !s.IsValid() {
		panic(fmt.Sprintf("mkdirs: invalid strategy: %v", s))
	}
	return func(c *config) {
		c.Strategy = s
	}
}

// WithConcurrency caps the number of paths EnsureAll creates at once. A value
// of 0 means unlimited. Other operations ignore it.
//
// Default: DefaultConcurrency.
//
// Panics if n < 0.
func WithConcurrency(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("mkdirs: concurrency must not be negative, got %d", n))
	}
	return func(c *config) {
		c.Concurrency = n
	}
}

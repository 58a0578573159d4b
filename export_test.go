package mkdirs

import (
	"io/fs"

	"github.com/giantswarm/mkdirs/internal/core"
)

// ConfigSnapshot holds a copy of config fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	Cwd         string
	Mode        *fs.FileMode
	Umask       *fs.FileMode
	Platform    Platform
	Strategy    Strategy
	FS          FS
	Concurrency int
}

// ApplyOptionsForTesting creates a default config, applies the given options,
// and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := newConfig(opts)
	return ConfigSnapshot{
		Cwd:         cfg.Cwd,
		Mode:        cfg.Mode,
		Umask:       cfg.Umask,
		Platform:    cfg.Platform,
		Strategy:    cfg.Strategy,
		FS:          cfg.FS,
		Concurrency: cfg.Concurrency,
	}
}

// ProcessUmaskForTesting returns the umask the default mode is derived from.
func ProcessUmaskForTesting() fs.FileMode { return core.ProcessUmask() }

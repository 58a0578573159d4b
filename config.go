package mkdirs

import "github.com/giantswarm/mkdirs/internal/core"

// config holds the settings for one call. This unexported type wraps
// core.Config via embedding, keeping internal/core types out of the public
// API signature while avoiding field-by-field duplication.
type config struct {
	core.Config
}

// defaultConfig returns a config populated with all default values. Cwd,
// Mode and Umask stay unset so they are resolved when the call runs.
func defaultConfig() config {
	return config{core.Config{
		Platform:    core.HostPlatform(),
		Strategy:    DefaultStrategy,
		FS:          OSFS{},
		Concurrency: DefaultConcurrency,
	}}
}

// newConfig applies opts to a fresh default config.
func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// toCoreConfig returns the embedded core.Config.
func (c config) toCoreConfig() core.Config {
	return c.Config
}

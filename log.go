package mkdirs

import (
	"log/slog"

	"github.com/giantswarm/mkdirs/internal/core"
)

// SetLogger replaces the package-level logger used by mkdirs. The library
// logs only at Debug level: one record per directory it creates and one per
// segment found already created by a concurrent caller. Failures are returned,
// never logged.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached. Call
// SetLogger(nil) after slog.SetDefault() to pick up changes.
//
// SetLogger is safe to call concurrently with other mkdirs operations; a
// call running at the same time may still use the previous logger.
//
// Example:
//
//	mkdirs.SetLogger(myLogger.With("component", "mkdirs"))
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}

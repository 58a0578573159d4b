package core

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the logger installed via SetLogger. A nil value means the
// cached default is used.
var logger atomic.Pointer[slog.Logger]

// defaultLogger caches slog.Default() with the mkdirs component attribute so
// the builder does not allocate a new logger per created segment. SetLogger
// clears it, which lets a later slog.SetDefault take effect.
var defaultLogger atomic.Pointer[slog.Logger]

// Logger returns the current package-level logger. It is safe to call from
// multiple goroutines and never returns nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := slog.Default().With("component", "mkdirs")
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	if l2 := defaultLogger.Load(); l2 != nil {
		return l2
	}
	return l
}

// SetLogger replaces the package-level logger. Passing nil restores the
// default derived from slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	defaultLogger.Store(nil)
}

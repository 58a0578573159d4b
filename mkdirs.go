package mkdirs

import (
	"context"

	"github.com/giantswarm/mkdirs/internal/core"
)

// Result is the outcome delivered by EnsureAsync. On success Path is the
// absolute directory path and Err is nil; on failure Path is empty.
type Result = core.Result

// Ensure creates path and every missing ancestor, returning the absolute path
// of the directory. A path that already exists as a directory is not an
// error, and its permissions are left unchanged.
//
// Failures are *PathError values; see the Err* sentinels for the kinds.
//
// Panics if any option receives an invalid value. See individual With*
// functions for constraints.
func Ensure(path string, opts ...Option) (string, error) {
	return core.Ensure(newConfig(opts).toCoreConfig(), path)
}

// EnsureParent creates the directory that holds filePath, and every missing
// ancestor, and returns the absolute path of that directory. The file itself
// is not created.
func EnsureParent(filePath string, opts ...Option) (string, error) {
	return core.EnsureParent(newConfig(opts).toCoreConfig(), filePath)
}

// EnsureAsync runs Ensure on its own goroutine. The returned channel delivers
// exactly one Result and is then closed; it is buffered, so the goroutine
// finishes even if nobody receives.
//
// Options are applied before EnsureAsync returns, so invalid options panic
// in the caller's goroutine.
func EnsureAsync(path string, opts ...Option) <-chan Result {
	return core.EnsureAsync(newConfig(opts).toCoreConfig(), path)
}

// EnsureAll ensures every path concurrently and returns the absolute paths in
// input order. Duplicate and overlapping paths are allowed; each directory is
// created once and every caller sees success.
//
// At most WithConcurrency goroutines run at once (unlimited by default). The
// first failure is returned and no further paths are started after it, nor
// after ctx is done; builds already in progress run to completion.
func EnsureAll(ctx context.Context, paths []string, opts ...Option) ([]string, error) {
	return core.EnsureAll(ctx, newConfig(opts).toCoreConfig(), paths)
}

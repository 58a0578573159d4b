// Package mkdirs creates a directory together with every missing ancestor and
// returns its absolute path, the way os.MkdirAll does, while tolerating
// concurrent callers that race to create the same tree.
//
// # Basic Usage
//
//	import "github.com/giantswarm/mkdirs"
//
//	dir, err := mkdirs.Ensure("var/cache/app")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// dir is absolute, e.g. /home/me/project/var/cache/app
//
// Relative paths are resolved against the process working directory unless
// WithCwd is given. Newly created directories get 0o777 minus the process
// umask unless WithMode is given. Existing directories are left untouched.
//
// # Errors
//
// Every failure is a *PathError whose Kind says what went wrong. Use
// errors.Is with the exported sentinels to test for a kind:
//
//	_, err := mkdirs.Ensure("/etc/passwd/sub")
//	if errors.Is(err, mkdirs.ErrNotADirectory) {
//	    // a segment of the path is a regular file
//	}
//
// The *PathError also wraps the operating system error, so
// errors.Is(err, fs.ErrExist) and errors.As with *PathError both work.
//
// # Concurrent Use
//
// Any number of goroutines may ensure the same or overlapping paths at once.
// A caller that loses the race to create a segment re-checks it and succeeds
// if the winner produced a directory.
//
//	res := <-mkdirs.EnsureAsync("out/reports")
//
//	dirs, err := mkdirs.EnsureAll(ctx, []string{"out/a", "out/b", "out/a"},
//	    mkdirs.WithConcurrency(4))
//
// # Testing
//
// WithFS swaps the operating system for another FS implementation, and
// WithUmask and WithPlatform remove the dependency on process state.
package mkdirs

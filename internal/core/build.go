package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"unicode/utf8"
)

// Build creates target and every missing ancestor through fsys using the
// given strategy, and returns target. target must be absolute and cleaned
// (see Resolve).
//
// Segments that already exist as directories are left alone. A segment that
// exists as anything else fails the call with KindNotADirectory naming that
// segment, and nothing below it is created. Segments created before a
// failure are not removed.
func Build(fsys FS, target string, perm fs.FileMode, strategy Strategy) (string, error) {
	switch strategy {
	case StrategySegmentWalk:
		return walk(fsys, target, perm)
	case StrategyRetry:
		return retry(fsys, target, perm)
	default:
		return "", fmt.Errorf("build %s: invalid strategy: %v", target, strategy)
	}
}

// walk implements StrategySegmentWalk.
func walk(fsys FS, target string, perm fs.FileMode) (string, error) {
	acc, segments := splitSegments(target)
	for _, seg := range segments {
		acc = filepath.Join(acc, seg)
		if err := ensureSegment(fsys, acc, perm); err != nil {
			return "", err
		}
	}
	return acc, nil
}

// splitSegments splits a cleaned absolute path into its volume root and the
// names below it.
func splitSegments(target string) (string, []string) {
	vol := filepath.VolumeName(target)
	rest := target[len(vol):]

	i := 0
	for i < len(rest) && os.IsPathSeparator(rest[i]) {
		i++
	}
	segments := strings.FieldsFunc(rest[i:], func(r rune) bool {
		return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
	})
	return vol + rest[:i], segments
}

// ensureSegment makes sure path exists as a directory, creating it when it
// is missing.
func ensureSegment(fsys FS, path string, perm fs.FileMode) error {
	info, err := fsys.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return notADirectory(path, syscall.ENOTDIR)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Classify(OpStat, path, err)
	}

	if err := fsys.Mkdir(path, perm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return recheck(fsys, path, err)
		}
		return Classify(OpMkdir, path, err)
	}
	Logger().Debug("created directory", "path", path, "mode", perm)
	return nil
}

// recheck handles a Mkdir that failed because path already exists, which
// happens when another caller created it after this one saw it missing.
// A directory there means the race was benign. Anything else is reported
// with the original creation error.
func recheck(fsys FS, path string, createErr error) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return Classify(OpMkdir, path, createErr)
	}
	if !info.IsDir() {
		return notADirectory(path, underlying(createErr))
	}
	Logger().Debug("directory already exists", "path", path)
	return nil
}

func notADirectory(path string, err error) *PathError {
	return &PathError{Kind: KindNotADirectory, Op: OpMkdir, Path: path, Err: err}
}

// pending is a path waiting to be created by retry.
type pending struct {
	path string
	// retried is set once the parent has been queued; a second
	// "does not exist" for the same path is then final.
	retried bool
}

// retry implements StrategyRetry as an explicit stack instead of recursion.
// Every queued parent is strictly shorter than the path that queued it, and
// each path is attempted at most twice, so the loop terminates.
func retry(fsys FS, target string, perm fs.FileMode) (string, error) {
	stack := []pending{{path: target}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		err := fsys.Mkdir(top.path, perm)

		switch {
		case err == nil:
			Logger().Debug("created directory", "path", top.path, "mode", perm)
		case errors.Is(err, fs.ErrExist):
			if rerr := recheck(fsys, top.path, err); rerr != nil {
				return "", rerr
			}
		case errors.Is(err, fs.ErrNotExist):
			parent := filepath.Dir(top.path)
			if top.retried || parent == top.path || hasNullByte(top.path) {
				return "", Classify(OpMkdir, top.path, err)
			}
			top.retried = true
			stack = append(stack, pending{path: parent})
			continue
		default:
			pe := Classify(OpMkdir, top.path, err)
			if pe.Kind == KindNotADirectory {
				return "", locateNonDirectory(fsys, top.path, pe)
			}
			return "", pe
		}

		stack = stack[:len(stack)-1]
	}

	return target, nil
}

// locateNonDirectory finds the ancestor of path that exists but is not a
// directory, which is what makes the OS report ENOTDIR for path. If no such
// ancestor is found, cause is returned.
func locateNonDirectory(fsys FS, path string, cause *PathError) *PathError {
	dir := path
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return cause
		}
		dir = parent

		info, err := fsys.Stat(dir)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return cause
		}
		return notADirectory(dir, cause.Err)
	}
}

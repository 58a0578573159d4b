package core

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one concurrent Ensure.
type Result struct {
	Path string
	Err  error
}

// Ensure resolves path and creates it with every missing ancestor.
// It returns the absolute path of the directory.
func Ensure(cfg Config, path string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}
	target, err := Resolve(path, cfg.Cwd, cfg.Platform)
	if err != nil {
		return "", err
	}
	return Build(cfg.FS, target, cfg.Perm(), cfg.Strategy)
}

// EnsureParent resolves filePath and creates the directory that holds it.
// It returns the absolute path of that directory.
func EnsureParent(cfg Config, filePath string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid configuration: %w", err)
	}
	target, err := Resolve(filePath, cfg.Cwd, cfg.Platform)
	if err != nil {
		return "", err
	}
	return Build(cfg.FS, filepath.Dir(target), cfg.Perm(), cfg.Strategy)
}

// EnsureAsync runs Ensure on a new goroutine. The returned channel receives
// exactly one Result and is then closed.
func EnsureAsync(cfg Config, path string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		dir, err := Ensure(cfg, path)
		ch <- Result{Path: dir, Err: err}
	}()
	return ch
}

// EnsureAll ensures every path concurrently, at most cfg.Concurrency at a
// time, and returns the absolute paths in input order. Duplicate and
// overlapping paths are allowed.
//
// The first failure is returned. Once a path fails or ctx is done, no further
// paths are started; builds already running are not interrupted.
func EnsureAll(ctx context.Context, cfg Config, paths []string) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the default mode once for the whole batch.
	perm := cfg.Perm()
	cfg.Mode = &perm

	out := make([]string, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	if cfg.Concurrency > 0 {
		g.SetLimit(cfg.Concurrency)
	}

	started := 0
	for i, p := range paths {
		if gCtx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			dir, err := Ensure(cfg, p)
			if err != nil {
				return err
			}
			out[i] = dir
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if started < len(paths) {
		return nil, fmt.Errorf("ensure directories: %w", ctx.Err())
	}
	return out, nil
}

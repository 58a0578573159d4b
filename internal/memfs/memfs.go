package memfs

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"
)

// FS is an in-memory filesystem holding directories and empty regular files.
// It is safe for concurrent use.
type FS struct {
	// BeforeMkdir, if set, runs at the start of every Mkdir call with the
	// cleaned name and without the lock held. It must be set before the FS
	// is shared between goroutines. Use AddDir or AddFile inside the hook to
	// simulate another process winning a race.
	BeforeMkdir func(name string)

	mu         sync.Mutex
	nodes      map[string]node
	mkdirCalls int
	statCalls  int
}

type node struct {
	mode    fs.FileMode
	modTime time.Time
}

// New returns an empty FS.
func New() *FS {
	return &FS{nodes: make(map[string]node)}
}

// Mkdir creates the directory name. Like os.Mkdir, it fails with
// fs.ErrExist when name exists and fs.ErrNotExist when the parent is
// missing.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = filepath.Clean(name)
	if hook := f.BeforeMkdir; hook != nil {
		hook(name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.mkdirCalls++

	if err := f.checkAncestors("mkdir", name); err != nil {
		return err
	}
	if _, ok := f.lookup(name); ok {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	f.nodes[name] = node{mode: fs.ModeDir | perm&fs.ModePerm, modTime: time.Now()}
	return nil
}

// Stat returns the FileInfo for name.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	name = filepath.Clean(name)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.statCalls++

	if err := f.checkAncestors("stat", name); err != nil {
		return nil, err
	}
	n, ok := f.lookup(name)
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fileInfo{name: filepath.Base(name), node: n}, nil
}

// AddDir records name as a directory with mode 0o755, together with any
// missing ancestors. It does not run hooks and replaces whatever name was.
func (f *FS) AddDir(name string) {
	f.add(name, fs.ModeDir|0o755)
}

// AddFile records name as an empty regular file, creating any missing
// ancestors as directories. It does not run hooks and replaces whatever
// name was.
func (f *FS) AddFile(name string) {
	f.add(name, 0o644)
}

func (f *FS) add(name string, mode fs.FileMode) {
	f.mu.Lock()
	defer f.mu.Unlock()

	name = filepath.Clean(name)
	now := time.Now()
	for dir := filepath.Dir(name); !isRoot(dir); dir = filepath.Dir(dir) {
		if _, ok := f.nodes[dir]; ok {
			break
		}
		f.nodes[dir] = node{mode: fs.ModeDir | 0o755, modTime: now}
	}
	f.nodes[name] = node{mode: mode, modTime: now}
}

// Mode returns the mode of name and whether it exists.
func (f *FS) Mode(name string) (fs.FileMode, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.lookup(filepath.Clean(name))
	return n.mode, ok
}

// Paths returns every recorded path in lexical order. Implicit volume roots
// are not included.
func (f *FS) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, 0, len(f.nodes))
	for p := range f.nodes {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// MkdirCalls returns how many times Mkdir has been called.
func (f *FS) MkdirCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mkdirCalls
}

// StatCalls returns how many times Stat has been called.
func (f *FS) StatCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statCalls
}

// lookup must be called with f.mu held.
func (f *FS) lookup(name string) (node, bool) {
	if isRoot(name) {
		return node{mode: fs.ModeDir | 0o755}, true
	}
	n, ok := f.nodes[name]
	return n, ok
}

// checkAncestors reports the error the OS gives when an ancestor of name is
// missing or is not a directory, checking from the root downward. It must
// be called with f.mu held.
func (f *FS) checkAncestors(op, name string) error {
	if strings.IndexByte(name, 0) >= 0 {
		return &fs.PathError{Op: op, Path: name, Err: syscall.EINVAL}
	}

	var ancestors []string
	for dir := filepath.Dir(name); ; dir = filepath.Dir(dir) {
		ancestors = append(ancestors, dir)
		if isRoot(dir) {
			break
		}
	}
	if isRoot(name) {
		return nil
	}

	for _, dir := range slices.Backward(ancestors) {
		n, ok := f.lookup(dir)
		if !ok {
			return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
		}
		if !n.mode.IsDir() {
			return &fs.PathError{Op: op, Path: name, Err: syscall.ENOTDIR}
		}
	}
	return nil
}

func isRoot(name string) bool {
	return filepath.Dir(name) == name
}

type fileInfo struct {
	name string
	node node
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return 0 }
func (fi fileInfo) Mode() fs.FileMode  { return fi.node.mode }
func (fi fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi fileInfo) IsDir() bool        { return fi.node.mode.IsDir() }
func (fi fileInfo) Sys() any           { return nil }

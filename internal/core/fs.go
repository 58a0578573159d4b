package core

import (
	"io/fs"
	"os"
)

// FS is the filesystem capability Build needs. Implementations return
// ordinary Go errors: fs.ErrExist and fs.ErrNotExist (possibly wrapped in
// *fs.PathError or as errno values), syscall.ENOTDIR and so on. Build
// classifies them; implementations do not need to.
//
// Mkdir must create exactly one directory and fail when name already exists.
// Stat must follow symbolic links.
type FS interface {
	Mkdir(name string, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)
}

// OSFS is the FS backed by the os package.
type OSFS struct{}

var _ FS = OSFS{}

// Mkdir calls os.Mkdir. The process file-creation mask still applies.
func (OSFS) Mkdir(name string, perm fs.FileMode) error {
	return os.Mkdir(name, perm)
}

// Stat calls os.Stat.
func (OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

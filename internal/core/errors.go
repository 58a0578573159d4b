package core

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/giantswarm/mkdirs/internal/sentinel"
)

// Sentinel errors matched by *PathError.Is according to its Kind.
const (
	ErrInvalidPath   = sentinel.Error("invalid path")
	ErrNotADirectory = sentinel.Error("not a directory")
	ErrPathTooLong   = sentinel.Error("path too long")
	ErrNullByte      = sentinel.Error("path contains null bytes")
	ErrNotExist      = sentinel.Error("path does not exist")
	ErrExist         = sentinel.Error("path already exists")
	ErrPermission    = sentinel.Error("permission denied")

	// ErrEmptyPath is the underlying error of the KindInvalidPath failure
	// returned for an empty input path.
	ErrEmptyPath = sentinel.Error("path must not be empty")
)

// Operation names recorded in PathError.Op.
const (
	OpMkdir = "mkdir"
	OpStat  = "stat"
)

// Kind classifies a failure.
type Kind int

const (
	// KindOther covers failures with no more specific kind: quota, read-only
	// filesystems, I/O errors.
	KindOther Kind = iota
	KindInvalidPath
	KindNotADirectory
	KindPathTooLong
	KindNullByte
	KindNotExist
	KindExist
	KindPermission
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "KindOther"
	case KindInvalidPath:
		return "KindInvalidPath"
	case KindNotADirectory:
		return "KindNotADirectory"
	case KindPathTooLong:
		return "KindPathTooLong"
	case KindNullByte:
		return "KindNullByte"
	case KindNotExist:
		return "KindNotExist"
	case KindExist:
		return "KindExist"
	case KindPermission:
		return "KindPermission"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidPath:
		return ErrInvalidPath
	case KindNotADirectory:
		return ErrNotADirectory
	case KindPathTooLong:
		return ErrPathTooLong
	case KindNullByte:
		return ErrNullByte
	case KindNotExist:
		return ErrNotExist
	case KindExist:
		return ErrExist
	case KindPermission:
		return ErrPermission
	default:
		return nil
	}
}

// PathError records a classified failure and the exact path that caused it.
type PathError struct {
	Kind Kind
	Op   string
	Path string
	// Err is the error reported by the filesystem backend, with any
	// *fs.PathError wrapper removed.
	Err error
}

// Error formats the failure like *fs.PathError does.
func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the backend error so errno comparisons keep working.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *PathError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Classify turns a backend error for path into a *PathError. Errors that are
// already classified are returned unchanged.
//
// Classification uses errors.Is against errno values and io/fs sentinels and
// looks at the path itself for NUL bytes. It never inspects error text.
func Classify(op, path string, err error) *PathError {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe
	}
	return &PathError{
		Kind: classifyKind(path, err),
		Op:   op,
		Path: path,
		Err:  underlying(err),
	}
}

func classifyKind(path string, err error) Kind {
	if hasNullByte(path) {
		return KindNullByte
	}
	if k, ok := platformKind(err); ok {
		return k
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotExist
	case errors.Is(err, fs.ErrExist):
		return KindExist
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindOther
	}
}

// underlying strips a top-level *fs.PathError so the path is not repeated
// in PathError.Error. Wrapped chains keep their context.
func underlying(err error) error {
	if pe, ok := err.(*fs.PathError); ok && pe.Err != nil { //nolint:errorlint // only the outermost wrapper is stripped
		return pe.Err
	}
	return err
}

func hasNullByte(path string) bool {
	return strings.IndexByte(path, 0) >= 0
}

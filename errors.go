package mkdirs

import "github.com/giantswarm/mkdirs/internal/core"

// Sentinel errors for error inspection with errors.Is. A *PathError matches
// exactly the sentinel for its Kind; KindOther matches none of them.
const (
	// ErrInvalidPath is matched when the path is empty or contains
	// characters the platform forbids.
	ErrInvalidPath = core.ErrInvalidPath

	// ErrNotADirectory is matched when a segment of the path exists but is
	// not a directory. PathError.Path names that segment.
	ErrNotADirectory = core.ErrNotADirectory

	// ErrPathTooLong is matched when the path or one of its names exceeds
	// the operating system limit.
	ErrPathTooLong = core.ErrPathTooLong

	// ErrNullByte is matched when the path contains a NUL byte.
	ErrNullByte = core.ErrNullByte

	// ErrNotExist is matched when an ancestor cannot be created because its
	// own parent is missing and cannot be created either.
	ErrNotExist = core.ErrNotExist

	// ErrExist is matched when an entry already exists and could not be
	// examined further.
	ErrExist = core.ErrExist

	// ErrPermission is matched when the operating system denies access.
	ErrPermission = core.ErrPermission

	// ErrEmptyPath is wrapped by the ErrInvalidPath failure for an empty
	// input path.
	ErrEmptyPath = core.ErrEmptyPath
)

// Kind classifies a failure. Kind is a type alias so the String method of
// [core.Kind] is part of the public API.
type Kind = core.Kind

const (
	KindOther         = core.KindOther
	KindInvalidPath   = core.KindInvalidPath
	KindNotADirectory = core.KindNotADirectory
	KindPathTooLong   = core.KindPathTooLong
	KindNullByte      = core.KindNullByte
	KindNotExist      = core.KindNotExist
	KindExist         = core.KindExist
	KindPermission    = core.KindPermission
)

// PathError is the error returned for every failed directory operation. It
// records the Kind, the operation ("mkdir" or "stat"), the path the failure
// applies to and the underlying operating system error.
//
// Use errors.As to retrieve it:
//
//	var pe *mkdirs.PathError
//	if errors.As(err, &pe) && pe.Kind == mkdirs.KindNotADirectory {
//	    fmt.Println("blocked by", pe.Path)
//	}
type PathError = core.PathError

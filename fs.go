package mkdirs

import "github.com/giantswarm/mkdirs/internal/core"

// FS is the filesystem a call creates directories on. Mkdir must create
// exactly one directory and fail with an error matching fs.ErrExist when the
// name is taken; Stat must follow symbolic links. Errors are classified by
// the library, so implementations return ordinary errors.
type FS = core.FS

// OSFS is the FS backed by the os package. It is the default.
type OSFS = core.OSFS

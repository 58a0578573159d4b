//go:build !unix

package core

import "io/fs"

// ProcessUmask returns 0: the platform has no file-creation mask.
func ProcessUmask() fs.FileMode {
	return 0
}

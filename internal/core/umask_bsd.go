//go:build unix && !linux

package core

import "io/fs"

// ProcessUmask returns the file-creation mask of the running process.
func ProcessUmask() fs.FileMode {
	return swapUmask()
}

//go:build unix

package core

import (
	"io/fs"
	"sync"

	"golang.org/x/sys/unix"
)

// umaskMu serializes set-and-restore reads of the mask. Files created by
// other goroutines during the window still see a zero mask.
var umaskMu sync.Mutex

func swapUmask() fs.FileMode {
	umaskMu.Lock()
	defer umaskMu.Unlock()

	old := unix.Umask(0)
	unix.Umask(old)
	return fs.FileMode(old) & fs.ModePerm //nolint:gosec // G115: umask is a 9-bit value
}

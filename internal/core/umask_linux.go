//go:build linux

package core

import (
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// procStatusPath is read for the Umask field, available since Linux 4.7.
const procStatusPath = "/proc/self/status"

// ProcessUmask returns the file-creation mask of the running process.
// It reads procfs so the mask is never modified, and falls back to a
// set-and-restore only when procfs does not report it.
func ProcessUmask() fs.FileMode {
	if mask, ok := procUmask(procStatusPath); ok {
		return mask
	}
	return swapUmask()
}

func procUmask(statusPath string) (fs.FileMode, bool) {
	data, err := os.ReadFile(statusPath) //nolint:gosec // G304: fixed procfs path
	if err != nil {
		return 0, false
	}
	return parseUmask(string(data))
}

// parseUmask extracts the octal Umask field from a /proc/<pid>/status body.
func parseUmask(status string) (fs.FileMode, bool) {
	for line := range strings.Lines(status) {
		rest, ok := strings.CutPrefix(line, "Umask:")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(strings.TrimSpace(rest), 8, 32)
		if err != nil {
			return 0, false
		}
		return fs.FileMode(v) & fs.ModePerm, true
	}
	return 0, false
}

//go:build windows

package core

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

func platformKind(err error) (Kind, bool) {
	switch {
	case errors.Is(err, windows.ERROR_DIRECTORY), errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory, true
	case errors.Is(err, windows.ERROR_FILENAME_EXCED_RANGE), errors.Is(err, syscall.ENAMETOOLONG):
		return KindPathTooLong, true
	case errors.Is(err, windows.ERROR_INVALID_NAME), errors.Is(err, windows.ERROR_BAD_PATHNAME):
		return KindInvalidPath, true
	default:
		return KindOther, false
	}
}

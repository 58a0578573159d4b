//go:build !unix && !windows

package core

import (
	"errors"
	"syscall"
)

func platformKind(err error) (Kind, bool) {
	switch {
	case errors.Is(err, syscall.ENOTDIR):
		return KindNotADirectory, true
	case errors.Is(err, syscall.ENAMETOOLONG):
		return KindPathTooLong, true
	default:
		return KindOther, false
	}
}

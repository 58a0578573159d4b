//go:build unix

package core

import (
	"errors"

	"golang.org/x/sys/unix"
)

func platformKind(err error) (Kind, bool) {
	switch {
	case errors.Is(err, unix.ENOTDIR):
		return KindNotADirectory, true
	case errors.Is(err, unix.ENAMETOOLONG):
		return KindPathTooLong, true
	default:
		return KindOther, false
	}
}

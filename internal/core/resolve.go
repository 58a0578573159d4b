package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"syscall"
)

// reservedChars may not appear below the root prefix of a Windows path.
const reservedChars = `<>:"|?*`

// Resolve returns the absolute, cleaned form of input. A relative input is
// joined onto cwd, which is itself made absolute first; an empty cwd means
// the process working directory.
//
// On PlatformWindows, input is rejected with KindInvalidPath when anything
// below its root prefix contains a reserved character. The check applies to
// input as given, before resolution. Resolve never touches the filesystem.
func Resolve(input, cwd string, platform Platform) (string, error) {
	if input == "" {
		return "", &PathError{Kind: KindInvalidPath, Op: OpMkdir, Path: input, Err: ErrEmptyPath}
	}
	if platform == PlatformWindows && strings.ContainsAny(input[len(windowsRoot(input)):], reservedChars) {
		return "", &PathError{
			Kind: KindInvalidPath,
			Op:   OpMkdir,
			Path: input,
			Err:  fmt.Errorf("invalid characters: %w", syscall.EINVAL),
		}
	}

	if filepath.IsAbs(input) {
		return filepath.Clean(input), nil
	}

	base, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("resolve working directory %q: %w", cwd, err)
	}
	return filepath.Join(base, input), nil
}

// windowsRoot returns the root prefix of p under Windows rules: a drive
// ("C:"), a UNC share ("\\server\share") or nothing, followed by any leading
// separators. It does not depend on the host's path/filepath rules, so the
// result is the same on every GOOS.
func windowsRoot(p string) string {
	n := 0
	switch {
	case len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]):
		n = 2
	case len(p) >= 2 && isWindowsSeparator(p[0]) && isWindowsSeparator(p[1]):
		n = 2
		for n < len(p) && !isWindowsSeparator(p[n]) { // server
			n++
		}
		for n < len(p) && isWindowsSeparator(p[n]) {
			n++
		}
		for n < len(p) && !isWindowsSeparator(p[n]) { // share
			n++
		}
	}
	for n < len(p) && isWindowsSeparator(p[n]) {
		n++
	}
	return p[:n]
}

func isWindowsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

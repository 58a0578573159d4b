// Package memfs provides an in-memory filesystem with the Mkdir and Stat
// methods mkdirs builds on, plus hooks for forcing creation races
// deterministically in tests.
//
// Paths are cleaned with path/filepath of the host. Every volume root
// exists implicitly as a directory. Errors mirror what the os package
// returns on unix: *fs.PathError wrapping fs.ErrExist, fs.ErrNotExist,
// syscall.ENOTDIR or syscall.EINVAL.
package memfs

package memfs

import (
	"errors"
	"io/fs"
	"path/filepath"
	"syscall"
	"testing"
)

func TestFS_Mkdir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	file := filepath.Join(base, "file")

	tests := map[string]struct {
		path    string
		wantErr error
	}{
		"parent exists":         {path: filepath.Join(base, "a"), wantErr: nil},
		"parent missing":        {path: filepath.Join(base, "missing", "a"), wantErr: fs.ErrNotExist},
		"already exists":        {path: base, wantErr: fs.ErrExist},
		"parent is a file":      {path: filepath.Join(file, "a"), wantErr: syscall.ENOTDIR},
		"ancestor is a file":    {path: filepath.Join(file, "a", "b"), wantErr: syscall.ENOTDIR},
		"null byte":             {path: filepath.Join(base, "a\x00b"), wantErr: syscall.EINVAL},
		"volume root is a dir":  {path: filepath.VolumeName(base) + string(filepath.Separator), wantErr: fs.ErrExist},
		"existing file blocked": {path: file, wantErr: fs.ErrExist},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mfs := New()
			mfs.AddDir(base)
			mfs.AddFile(file)

			err := mfs.Mkdir(tc.path, 0o750)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Mkdir() error: %v", err)
				}
				mode, ok := mfs.Mode(tc.path)
				if !ok {
					t.Fatal("directory not recorded")
				}
				if mode != fs.ModeDir|0o750 {
					t.Errorf("mode = %v, want %v", mode, fs.ModeDir|0o750)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Mkdir() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestFS_Stat(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	mfs := New()
	mfs.AddDir(base)
	mfs.AddFile(filepath.Join(base, "file"))

	info, err := mfs.Stat(base)
	if err != nil {
		t.Fatalf("Stat(dir) error: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}
	if info.Name() != filepath.Base(base) {
		t.Errorf("Name() = %q, want %q", info.Name(), filepath.Base(base))
	}

	info, err = mfs.Stat(filepath.Join(base, "file"))
	if err != nil {
		t.Fatalf("Stat(file) error: %v", err)
	}
	if info.IsDir() {
		t.Error("expected regular file")
	}

	if _, err := mfs.Stat(filepath.Join(base, "nope")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(missing) error = %v, want %v", err, fs.ErrNotExist)
	}
	if _, err := mfs.Stat(filepath.Join(base, "file", "x")); !errors.Is(err, syscall.ENOTDIR) {
		t.Errorf("Stat(below file) error = %v, want %v", err, syscall.ENOTDIR)
	}

	if got := mfs.StatCalls(); got != 4 {
		t.Errorf("StatCalls() = %d, want 4", got)
	}
}

func TestFS_AddCreatesAncestors(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	file := filepath.Join(base, "a", "b", "file")

	mfs := New()
	mfs.AddFile(file)

	for _, dir := range []string{base, filepath.Join(base, "a"), filepath.Join(base, "a", "b")} {
		if mode, ok := mfs.Mode(dir); !ok || !mode.IsDir() {
			t.Errorf("Mode(%s) = %v, %v; want directory", dir, mode, ok)
		}
	}
	if mode, ok := mfs.Mode(file); !ok || !mode.IsRegular() {
		t.Errorf("Mode(%s) = %v, %v; want regular file", file, mode, ok)
	}
	if got := mfs.MkdirCalls(); got != 0 {
		t.Errorf("MkdirCalls() = %d, want 0", got)
	}
}

func TestFS_BeforeMkdirHook(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	target := filepath.Join(base, "raced")

	mfs := New()
	mfs.AddDir(base)
	mfs.BeforeMkdir = func(name string) {
		if name == target {
			mfs.AddDir(name)
		}
	}

	err := mfs.Mkdir(target, 0o755)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("Mkdir() error = %v, want %v", err, fs.ErrExist)
	}
	if got := mfs.MkdirCalls(); got != 1 {
		t.Errorf("MkdirCalls() = %d, want 1", got)
	}
	if mode, ok := mfs.Mode(target); !ok || !mode.IsDir() {
		t.Errorf("Mode(%s) = %v, %v; want directory", target, mode, ok)
	}
}

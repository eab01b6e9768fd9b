package fsx

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(fs afero.Fs, dir string) error {
	return fs.MkdirAll(dir, dirPerm)
}

// Exists reports whether anything (file or directory) is present at path.
func Exists(fs afero.Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

// WriteStreamAtomic copies r into dir/name through a temp file in the same
// directory and renames it into place, replacing any existing file.
// On failure the temp file is removed and the destination is left untouched.
func WriteStreamAtomic(fs afero.Fs, dir, name string, r io.Reader) error {
	dst := filepath.Join(dir, name)

	// Dot prefix keeps half-written files out of photo library views.
	tmp, err := afero.TempFile(fs, dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := fs.Chmod(tmpName, filePerm); err != nil {
		return err
	}

	return fs.Rename(tmpName, dst)
}

package billyfs

import (
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/dstevens/filekit/fsys"
)

// File wraps billy.File. The open name is kept because Stat is resolved
// through the filesystem (billy files do not expose it) and Name formats
// differ between billy backends.
type File struct {
	file billy.File
	fs   billy.Basic
	name string
}

func (f *File) Read(p []byte) (int, error)              { return f.file.Read(p) }
func (f *File) ReadAt(p []byte, off int64) (int, error) { return f.file.ReadAt(p, off) }
func (f *File) Write(p []byte) (int, error)             { return f.file.Write(p) }
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}
func (f *File) Close() error { return f.file.Close() }
func (f *File) Name() string { return f.name }

func (f *File) Stat() (os.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Sync flushes where the backend supports it and is a no-op elsewhere
// (memfs has nothing to flush).
func (f *File) Sync() error {
	if s, ok := f.file.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

var _ fsys.File = (*File)(nil)

// Package billyfs adapts go-billy filesystems to the fsys interfaces,
// making in-memory and chrooted backends available to the file
// operations and their tests.
package billyfs

import (
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/dstevens/filekit/fsys"
)

// FS wraps a billy.Filesystem as an fsys.FileSystem.
type FS struct {
	bfs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(bfs billy.Filesystem) *FS {
	return &FS{bfs: bfs}
}

// NewMemory returns an empty in-memory filesystem. Useful in tests to
// avoid touching the disk.
func NewMemory() *FS {
	return &FS{bfs: memfs.New()}
}

// NewLocal returns a filesystem chrooted at root. Paths handed to it are
// resolved relative to root and cannot escape it.
func NewLocal(root string) *FS {
	return &FS{bfs: osfs.New(root)}
}

// Unwrap returns the underlying billy filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

func (f *FS) OpenFile(name string, flag int, perm os.FileMode) (fsys.File, error) {
	file, err := f.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: file, fs: f.bfs, name: name}, nil
}

func (f *FS) Stat(name string) (os.FileInfo, error) {
	return f.bfs.Stat(name)
}

// ReadDir converts billy's []os.FileInfo listing to []os.DirEntry.
func (f *FS) ReadDir(name string) ([]os.DirEntry, error) {
	infos, err := f.bfs.ReadDir(name)
	if err != nil {
		return nil, err
	}

	entries := make([]os.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

func (f *FS) Remove(name string) error {
	return f.bfs.Remove(name)
}

func (f *FS) Rename(oldpath, newpath string) error {
	return f.bfs.Rename(oldpath, newpath)
}

func (f *FS) MkdirAll(path string, perm os.FileMode) error {
	return f.bfs.MkdirAll(path, perm)
}

type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

var _ fsys.FileSystem = (*FS)(nil)

// Package fsystest provides a conformance suite for fsys.FileSystem
// implementations. Backends run the same subtests so behavior stays
// aligned with what the library relies on.
package fsystest

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dstevens/filekit/fsys"
)

// Run exercises an implementation against the behaviors the library
// depends on. newFS must return a fresh writable filesystem and a base
// directory for test files ("" when the filesystem is already rooted,
// e.g. in-memory or chrooted backends).
func Run(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	t.Run("WriteReadSeek", func(t *testing.T) { testWriteReadSeek(t, newFS) })
	t.Run("AppendFlag", func(t *testing.T) { testAppendFlag(t, newFS) })
	t.Run("OpenMissing", func(t *testing.T) { testOpenMissing(t, newFS) })
	t.Run("CreateMissing", func(t *testing.T) { testCreateMissing(t, newFS) })
	t.Run("StatReadDir", func(t *testing.T) { testStatReadDir(t, newFS) })
	t.Run("RenameRemove", func(t *testing.T) { testRenameRemove(t, newFS) })
	t.Run("MkdirAll", func(t *testing.T) { testMkdirAll(t, newFS) })
}

func writeFile(t *testing.T, fsImpl fsys.FileSystem, name, content string) {
	t.Helper()

	f, err := fsImpl.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	require.NoError(t, err)

	_, err = io.WriteString(f, content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func readFile(t *testing.T, fsImpl fsys.FileSystem, name string) string {
	t.Helper()

	f, err := fsImpl.OpenFile(name, os.O_RDONLY, 0)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

func testWriteReadSeek(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	fsImpl, root := newFS(t)
	name := filepath.Join(root, "data.txt")

	writeFile(t, fsImpl, name, "hello world")
	require.Equal(t, "hello world", readFile(t, fsImpl, name))

	f, err := fsImpl.OpenFile(name, os.O_RDONLY, 0)
	require.NoError(t, err)
	defer f.Close()

	// Seek back to the middle and read the tail.
	pos, err := f.Seek(6, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(6), pos)

	tail, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "world", string(tail))

	// ReadAt is independent of the seek position.
	buf := make([]byte, 5)
	n, err := f.ReadAt(buf, 0)
	require.NoError(t, err)
	require.Equal(t, "hello", string(buf[:n]))
}

func testAppendFlag(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	fsImpl, root := newFS(t)
	name := filepath.Join(root, "log.txt")

	writeFile(t, fsImpl, name, "one\n")

	f, err := fsImpl.OpenFile(name, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = io.WriteString(f, "two\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Equal(t, "one\ntwo\n", readFile(t, fsImpl, name))
}

func testOpenMissing(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	fsImpl, root := newFS(t)

	_, err := fsImpl.OpenFile(filepath.Join(root, "absent.txt"), os.O_RDONLY, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = fsImpl.Stat(filepath.Join(root, "absent.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func testCreateMissing(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	fsImpl, root := newFS(t)
	name := filepath.Join(root, "created.txt")

	f, err := fsImpl.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = io.WriteString(f, "fresh")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Equal(t, "fresh", readFile(t, fsImpl, name))
}

func testStatReadDir(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	fsImpl, root := newFS(t)

	writeFile(t, fsImpl, filepath.Join(root, "a.txt"), "a")
	writeFile(t, fsImpl, filepath.Join(root, "b.txt"), "bb")
	require.NoError(t, fsImpl.MkdirAll(filepath.Join(root, "sub"), 0o755))

	info, err := fsImpl.Stat(filepath.Join(root, "b.txt"))
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, int64(2), info.Size())

	dir := root
	if dir == "" {
		dir = "."
	}
	entries, err := fsImpl.ReadDir(dir)
	require.NoError(t, err)

	byName := make(map[string]bool, len(entries))
	for _, entry := range entries {
		byName[entry.Name()] = entry.IsDir()
	}
	require.Equal(t, map[string]bool{"a.txt": false, "b.txt": false, "sub": true}, byName)
}

func testRenameRemove(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	fsImpl, root := newFS(t)

	oldName := filepath.Join(root, "old.txt")
	newName := filepath.Join(root, "new.txt")
	writeFile(t, fsImpl, oldName, "content")

	require.NoError(t, fsImpl.Rename(oldName, newName))

	_, err := fsImpl.Stat(oldName)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, "content", readFile(t, fsImpl, newName))

	require.NoError(t, fsImpl.Remove(newName))
	_, err = fsImpl.Stat(newName)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func testMkdirAll(t *testing.T, newFS func(t *testing.T) (fsys.FileSystem, string)) {
	fsImpl, root := newFS(t)

	nested := filepath.Join(root, "x", "y", "z")
	require.NoError(t, fsImpl.MkdirAll(nested, 0o755))

	info, err := fsImpl.Stat(nested)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Idempotent.
	require.NoError(t, fsImpl.MkdirAll(nested, 0o755))
}

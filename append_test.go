package filekit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstevens/filekit/billyfs"
	"github.com/dstevens/filekit/fsys"
	"github.com/dstevens/filekit/internal/filelock"
)

func TestAppend(t *testing.T) {
	kit := New()

	t.Run("CreatesMissingFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.txt")

		require.NoError(t, kit.Append(path, []byte("hello\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(data))
	})

	t.Run("AppendsToExisting", func(t *testing.T) {
		path := writeFixture(t, "log.txt", "first\n")

		require.NoError(t, kit.Append(path, []byte("second\n")))
		require.NoError(t, kit.Append(path, []byte("third\n")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\nthird\n", string(data))
	})

	t.Run("AppendString", func(t *testing.T) {
		path := writeFixture(t, "log.txt", "")

		require.NoError(t, kit.AppendString(path, "entry\n"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "entry\n", string(data))
	})

	t.Run("EmptyContent", func(t *testing.T) {
		path := writeFixture(t, "log.txt", "keep")

		require.NoError(t, kit.Append(path, nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "keep", string(data))
	})

	t.Run("WithoutCreateMissing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gone.txt")

		err := kit.Append(path, []byte("x"), WithoutCreate())
		require.ErrorIs(t, err, ErrNotFound)

		var werr *WriteError
		assert.False(t, errors.As(err, &werr), "missing file with create disabled is not a write failure")
	})

	t.Run("WithoutCreateExisting", func(t *testing.T) {
		path := writeFixture(t, "log.txt", "a")

		require.NoError(t, kit.Append(path, []byte("b"), WithoutCreate()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ab", string(data))
	})

	t.Run("WithPerm", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "private.txt")

		require.NoError(t, kit.Append(path, []byte("x"), WithPerm(0o600)))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("WithSync", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "durable.txt")

		require.NoError(t, kit.Append(path, []byte("x"), WithSync()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "x", string(data))
	})

	t.Run("WithFileLock", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locked.txt")

		require.NoError(t, kit.Append(path, []byte("x"), WithFileLock()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "x", string(data))
	})

	t.Run("ParentDirMissing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt")

		err := kit.Append(path, []byte("x"))

		var werr *WriteError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, "open", werr.Op)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestAppend_MemoryFS(t *testing.T) {
	kit := New(WithFileSystem(billyfs.NewMemory()))

	require.NoError(t, kit.AppendString("log.txt", "a\n"))
	require.NoError(t, kit.AppendString("log.txt", "b\n"))

	lines, err := kit.Load("log.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	t.Run("LockUnsupported", func(t *testing.T) {
		err := kit.AppendString("log.txt", "c\n", WithFileLock())

		var werr *WriteError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, "lock", werr.Op)
		assert.ErrorIs(t, err, filelock.ErrUnsupported)
	})
}

func TestAppend_FaultInjection(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("OpenFault", func(t *testing.T) {
		ffs := fsys.NewFaultyFS(nil)
		ffs.AddRule("victim", fsys.Fault{OpenErr: errBoom, FailAfterBytes: -1})
		kit := New(WithFileSystem(ffs))

		err := kit.Append(filepath.Join(t.TempDir(), "victim.txt"), []byte("x"))

		var werr *WriteError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, "open", werr.Op)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("WriteFault", func(t *testing.T) {
		ffs := fsys.NewFaultyFS(nil)
		ffs.AddRule("victim", fsys.Fault{FailAfterBytes: 0})
		kit := New(WithFileSystem(ffs))

		err := kit.Append(filepath.Join(t.TempDir(), "victim.txt"), []byte("x"))

		var werr *WriteError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, "append", werr.Op)
		assert.ErrorIs(t, err, fsys.ErrInjected)
	})

	t.Run("SyncFault", func(t *testing.T) {
		ffs := fsys.NewFaultyFS(nil)
		ffs.AddRule("victim", fsys.Fault{FailOnSync: true, FailAfterBytes: -1})
		kit := New(WithFileSystem(ffs))

		err := kit.Append(filepath.Join(t.TempDir(), "victim.txt"), []byte("x"), WithSync())

		var werr *WriteError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, "sync", werr.Op)
	})

	t.Run("CloseFault", func(t *testing.T) {
		ffs := fsys.NewFaultyFS(nil)
		ffs.AddRule("victim", fsys.Fault{FailOnClose: true, FailAfterBytes: -1})
		kit := New(WithFileSystem(ffs))

		path := filepath.Join(t.TempDir(), "victim.txt")
		err := kit.Append(path, []byte("x"))

		var werr *WriteError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, "close", werr.Op)

		// The write itself went through before close failed.
		data, rerr := os.ReadFile(path)
		require.NoError(t, rerr)
		assert.Equal(t, "x", string(data))
	})

	t.Run("WriteFaultBeatsCloseFault", func(t *testing.T) {
		ffs := fsys.NewFaultyFS(nil)
		ffs.AddRule("victim", fsys.Fault{FailAfterBytes: 0, FailOnClose: true})
		kit := New(WithFileSystem(ffs))

		err := kit.Append(filepath.Join(t.TempDir(), "victim.txt"), []byte("x"))

		var werr *WriteError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, "append", werr.Op)
	})
}

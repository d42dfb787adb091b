// Package filelock provides advisory file locking for append operations.
//
// Locks attach to the open descriptor and are released by Unlock or when
// the descriptor is closed. They are advisory: only cooperating processes
// taking the same lock are excluded.
package filelock

import (
	"errors"

	"github.com/dstevens/filekit/fsys"
)

// ErrUnsupported is reported when the file handle exposes no OS
// descriptor to lock (e.g. in-memory filesystems).
var ErrUnsupported = errors.New("filelock: not supported")

type fder interface {
	Fd() uintptr
}

// Lock takes an exclusive advisory lock on f, blocking until it is
// available.
func Lock(f fsys.File) error {
	fd, ok := f.(fder)
	if !ok {
		return ErrUnsupported
	}
	return lock(fd.Fd())
}

// Unlock releases a lock taken with Lock.
func Unlock(f fsys.File) error {
	fd, ok := f.(fder)
	if !ok {
		return ErrUnsupported
	}
	return unlock(fd.Fd())
}

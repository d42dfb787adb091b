//go:build windows

package filelock

import "golang.org/x/sys/windows"

// Windows locks byte ranges rather than whole files; locking the first
// byte is the conventional whole-file substitute.

func lock(fd uintptr) error {
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(fd), windows.LOCKFILE_EXCLUSIVE_LOCK, 0, 1, 0, ol)
}

func unlock(fd uintptr) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(fd), 0, 1, 0, ol)
}

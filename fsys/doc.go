// Package fsys provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, stat, readdir, etc.)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using the standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// The billyfs package adapts go-billy filesystems (in-memory, chrooted)
// to these interfaces.
//
// # Usage
//
// Production code should use fsys.Default (which is [LocalFS]):
//
//	file, err := fsys.Default.OpenFile(path, os.O_RDONLY, 0)
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fsys.NewFaultyFS(nil)
//	ffs.AddRule("journal", fsys.Fault{FailAfterBytes: 1024})
//	// inject ffs into the component under test
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Filesystem operations are typically fast (microseconds for local NVMe) and
// non-interruptible at the syscall level. Adding context would add overhead
// without meaningful cancellation capability.
package fsys

package filekit

import (
	"errors"
	"os"
	"time"

	"github.com/dstevens/filekit/fsys"
	"github.com/dstevens/filekit/internal/filelock"
)

// Append writes content at the end of the file at path. The file is
// created when missing unless WithoutCreate is set, in which case a
// missing path reports ErrNotFound.
//
// Failures while writing are reported as *WriteError with the failing
// operation recorded in its Op field.
func (k *Kit) Append(path string, content []byte, optFns ...AppendOption) error {
	start := time.Now()

	o := applyAppendOptions(optFns)
	err := k.appendFile(path, content, o)

	k.metrics.RecordAppend(len(content), time.Since(start), err)
	k.logger.LogAppend(path, len(content), err)
	return err
}

// AppendString appends content to the file at path. It is shorthand for
// Append with a byte conversion.
func (k *Kit) AppendString(path, content string, optFns ...AppendOption) error {
	return k.Append(path, []byte(content), optFns...)
}

func (k *Kit) appendFile(path string, content []byte, o appendOptions) error {
	flag := os.O_WRONLY | os.O_APPEND
	if o.create {
		flag |= os.O_CREATE
	}

	f, err := k.fs.OpenFile(path, flag, o.perm)
	if err != nil {
		if !o.create && errors.Is(err, ErrNotFound) {
			return openError(err)
		}
		return &WriteError{Op: "open", Path: path, cause: err}
	}

	err = k.writeContent(f, path, content, o)

	if cerr := f.Close(); cerr != nil && err == nil {
		err = &WriteError{Op: "close", Path: path, cause: cerr}
	}
	return err
}

func (k *Kit) writeContent(f fsys.File, path string, content []byte, o appendOptions) error {
	if o.lock {
		if err := filelock.Lock(f); err != nil {
			return &WriteError{Op: "lock", Path: path, cause: err}
		}
		defer filelock.Unlock(f)
	}

	if _, err := f.Write(content); err != nil {
		return &WriteError{Op: "append", Path: path, cause: err}
	}

	if o.sync {
		if err := f.Sync(); err != nil {
			return &WriteError{Op: "sync", Path: path, cause: err}
		}
	}
	return nil
}

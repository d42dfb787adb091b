package filekit

import (
	"os"

	"github.com/dstevens/filekit/fsys"
)

// OpenInput opens the file at path for reading. An unopenable path
// reports ErrNotFound. The caller owns the returned file and must close
// it.
func (k *Kit) OpenInput(path string) (fsys.File, error) {
	f, err := k.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, openError(err)
	}
	return f, nil
}

// OpenOutput opens the file at path for writing, creating it when
// missing and truncating it otherwise. Failures are reported as
// *WriteError. The caller owns the returned file and must close it.
func (k *Kit) OpenOutput(path string) (fsys.File, error) {
	f, err := k.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, &WriteError{Op: "create", Path: path, cause: err}
	}
	return f, nil
}

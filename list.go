package filekit

import (
	"fmt"
	"path/filepath"
	"time"
)

// DirFilter narrows a directory listing by extension and by name.
// Extensions are matched against the final dot segment of the entry
// name, so "archive.tar.gz" has extension ".gz". Entries in
// ExcludeNames are dropped by exact name match.
//
// ExcludeExtensions wins over TargetExtensions when both list the same
// extension. The zero value keeps every file.
type DirFilter struct {
	// TargetExtensions, when non-empty, is an allow-list. Files whose
	// extension is not listed are dropped, including files with no
	// extension at all.
	TargetExtensions []string

	// ExcludeExtensions drops files whose extension is listed.
	ExcludeExtensions []string

	// ExcludeNames drops files by exact name.
	ExcludeNames []string
}

// Keep reports whether a file with the given name passes the filter.
func (f DirFilter) Keep(name string) bool {
	for _, n := range f.ExcludeNames {
		if name == n {
			return false
		}
	}

	ext := filepath.Ext(name)
	for _, e := range f.ExcludeExtensions {
		if ext == e {
			return false
		}
	}

	if len(f.TargetExtensions) > 0 {
		for _, e := range f.TargetExtensions {
			if ext == e {
				return true
			}
		}
		return false
	}
	return true
}

// ListFiles returns the names of the regular files directly inside dir,
// in the order the file system reports them. Subdirectories are never
// descended into and never listed. Use WithDirFilter to narrow the
// result by extension or name.
//
// A missing dir, or a dir that is actually a file, reports ErrNotFound.
func (k *Kit) ListFiles(dir string, optFns ...ListOption) ([]string, error) {
	start := time.Now()

	o := applyListOptions(optFns)
	names, err := k.list(dir, o)

	k.metrics.RecordList(len(names), time.Since(start), err)
	k.logger.LogList(dir, len(names), err)
	return names, err
}

func (k *Kit) list(dir string, o listOptions) ([]string, error) {
	info, err := k.fs.Stat(dir)
	if err != nil {
		return nil, openError(err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}

	entries, err := k.fs.ReadDir(dir)
	if err != nil {
		return nil, openError(err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !o.filter.Keep(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

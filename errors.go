package filekit

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound is returned when a path cannot be opened for reading or
	// listing. It aliases fs.ErrNotExist, so errors.Is works with either
	// sentinel.
	ErrNotFound = fs.ErrNotExist

	// ErrEmptyFile is returned by PickRandom when the file yields no
	// candidate tokens.
	ErrEmptyFile = errors.New("file has no candidate tokens")
)

// ParseError indicates a token that could not be parsed as an integer.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Path  string
	Token string
	cause error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse %q: not an integer", e.Token)
	}
	return fmt.Sprintf("parse %q in %s: not an integer", e.Token, e.Path)
}

func (e *ParseError) Unwrap() error { return e.cause }

// WriteError indicates a failed write-side operation (open for append,
// write, sync, lock or close), distinct from a simple missing path.
//
// The original underlying error can be accessed via errors.Unwrap.
type WriteError struct {
	Op    string
	Path  string
	cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.cause)
}

func (e *WriteError) Unwrap() error { return e.cause }

// openError classifies read-side open failures. Any unopenable path
// reports as ErrNotFound; the underlying cause stays in the chain.
func openError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrNotFound, err)
}

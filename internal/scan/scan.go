// Package scan implements separator-delimited token reading shared by the
// load and random-pick operations.
package scan

import (
	"bufio"
	"io"
)

// Tokenizer reads single-byte-separated tokens from a stream. The
// separator is consumed and never part of a token. A stream that ends
// without a trailing separator still yields its final remainder as a
// token; a stream that ends directly after a separator does not yield a
// trailing empty token. Token length is unbounded.
type Tokenizer struct {
	br   *bufio.Reader
	sep  byte
	done bool
}

// NewTokenizer returns a Tokenizer splitting r on sep.
func NewTokenizer(r io.Reader, sep byte) *Tokenizer {
	return &Tokenizer{br: bufio.NewReader(r), sep: sep}
}

// Next returns the next token. It returns io.EOF once the stream is
// exhausted; any other error comes from the underlying reader.
func (t *Tokenizer) Next() (string, error) {
	if t.done {
		return "", io.EOF
	}

	s, err := t.br.ReadString(t.sep)
	if err == nil {
		return s[:len(s)-1], nil
	}
	if err == io.EOF {
		t.done = true
		if len(s) == 0 {
			return "", io.EOF
		}
		return s, nil
	}
	return "", err
}

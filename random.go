package filekit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dstevens/filekit/fsys"
	"github.com/dstevens/filekit/internal/scan"
)

// PickRandom returns one token from the file at path, chosen uniformly
// among all candidates. Tokens are produced by the same separator
// pipeline as Load, but every token is a candidate by default, empty
// ones included; use WithSkipEmpty(true) or WithFilter to narrow the
// candidate set.
//
// The default strategy is single-pass reservoir sampling with O(1)
// memory. WithTwoPass switches to counting first and re-reading up to a
// uniformly chosen index.
//
// A file with no candidates reports ErrEmptyFile; an unopenable path
// reports ErrNotFound.
func (k *Kit) PickRandom(path string, optFns ...PickOption) (string, error) {
	start := time.Now()

	o := applyPickOptions(optFns)
	line, err := k.pick(path, o)

	k.metrics.RecordPick(time.Since(start), err)
	k.logger.LogPick(path, err)
	return line, err
}

func (k *Kit) pick(path string, o pickOptions) (string, error) {
	f, err := k.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return "", openError(err)
	}
	defer f.Close()

	s := o.scanSettings
	s.compression = detectCompression(path, s.compression)

	if o.twoPass {
		return k.pickTwoPass(f, path, s)
	}
	return k.pickReservoir(f, path, s)
}

// pickReservoir keeps one candidate, replacing it with probability 1/n
// at the n-th candidate seen.
func (k *Kit) pickReservoir(f fsys.File, path string, s scanSettings) (string, error) {
	dec, err := newDecompressor(f, s.compression)
	if err != nil {
		return "", fmt.Errorf("pick %s: %w", path, err)
	}
	defer dec.Close()

	var (
		chosen string
		seen   int
	)

	tz := scan.NewTokenizer(dec, s.sep)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("pick %s: %w", path, err)
		}
		if skipToken(tok, s) {
			continue
		}
		seen++
		if k.randIntN(seen) == 0 {
			chosen = tok
		}
	}

	if seen == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return chosen, nil
}

// pickTwoPass counts candidates, draws an index, then seeks back and
// re-reads up to it.
func (k *Kit) pickTwoPass(f fsys.File, path string, s scanSettings) (string, error) {
	count, err := countCandidates(f, s)
	if err != nil {
		return "", fmt.Errorf("pick %s: %w", path, err)
	}
	if count == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	target := k.randIntN(count)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("pick %s: %w", path, err)
	}

	dec, err := newDecompressor(f, s.compression)
	if err != nil {
		return "", fmt.Errorf("pick %s: %w", path, err)
	}
	defer dec.Close()

	idx := 0

	tz := scan.NewTokenizer(dec, s.sep)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("pick %s: %w", path, err)
		}
		if skipToken(tok, s) {
			continue
		}
		if idx == target {
			return tok, nil
		}
		idx++
	}

	// The file shrank between the two passes.
	return "", fmt.Errorf("pick %s: file changed during two-pass pick", path)
}

func countCandidates(f fsys.File, s scanSettings) (int, error) {
	dec, err := newDecompressor(f, s.compression)
	if err != nil {
		return 0, err
	}
	defer dec.Close()

	count := 0

	tz := scan.NewTokenizer(dec, s.sep)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
		if !skipToken(tok, s) {
			count++
		}
	}
}

func skipToken(tok string, s scanSettings) bool {
	if s.skipEmpty && tok == "" {
		return true
	}
	return s.filter.Skip(tok)
}

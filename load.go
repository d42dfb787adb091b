package filekit

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dstevens/filekit/internal/scan"
)

// Load reads the file at path into a slice of tokens, split on the
// separator (default '\n', the separator itself excluded). Empty tokens
// are dropped unless WithSkipEmpty(false) is given; tokens matching a
// WithFilter pattern are dropped as well. A trailing separator does not
// produce a final empty token.
//
// An unopenable path reports ErrNotFound. An existing empty file yields
// an empty slice and no error.
func (k *Kit) Load(path string, optFns ...LoadOption) ([]string, error) {
	start := time.Now()

	o := applyLoadOptions(optFns)
	lines, err := k.loadPath(path, o.scanSettings)

	k.metrics.RecordLoad(len(lines), time.Since(start), err)
	k.logger.LogLoad(path, len(lines), err)
	return lines, err
}

// LoadInts reads the file at path and parses its contents into a slice
// of ints. Tokens pass through the same separator/filter pipeline as
// Load, then each retained token is split on whitespace and every field
// is parsed as a signed decimal integer. This handles both one-per-line
// and space-delimited layouts.
//
// Parsing is fail-fast: the first invalid field reports a *ParseError
// and no partial result.
func (k *Kit) LoadInts(path string, optFns ...LoadOption) ([]int, error) {
	start := time.Now()

	o := applyLoadOptions(optFns)
	lines, err := k.loadPath(path, o.scanSettings)

	var nums []int
	if err == nil {
		nums, err = parseInts(path, lines)
	}

	k.metrics.RecordLoad(len(nums), time.Since(start), err)
	k.logger.LogLoad(path, len(nums), err)
	return nums, err
}

// LoadReader tokenizes r with the same pipeline as Load. Compression is
// never auto-detected for readers; use WithCompression to decode a
// compressed stream.
func (k *Kit) LoadReader(r io.Reader, optFns ...LoadOption) ([]string, error) {
	o := applyLoadOptions(optFns)

	s := o.scanSettings
	s.compression = detectCompression("", s.compression)
	return readTokens(r, s)
}

// LoadMany loads several files concurrently and returns their token
// slices in input order. The first failure cancels the remaining loads
// and is returned; partial results are discarded.
func (k *Kit) LoadMany(ctx context.Context, paths []string, optFns ...LoadOption) ([][]string, error) {
	start := time.Now()
	o := applyLoadOptions(optFns)

	results := make([][]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines, err := k.loadPath(path, o.scanSettings)
			if err != nil {
				return err
			}
			results[i] = lines
			return nil
		})
	}

	err := g.Wait()
	k.metrics.RecordLoadMany(len(paths), time.Since(start), err)
	k.logger.LogLoadMany(len(paths), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// loadPath opens path and runs the token pipeline over it.
func (k *Kit) loadPath(path string, s scanSettings) ([]string, error) {
	f, err := k.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, openError(err)
	}
	defer f.Close()

	s.compression = detectCompression(path, s.compression)

	lines, err := readTokens(f, s)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lines, nil
}

// readTokens drains r, applying the skip-empty rule and the line filter.
// s.compression must already be resolved.
func readTokens(r io.Reader, s scanSettings) ([]string, error) {
	dec, err := newDecompressor(r, s.compression)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var lines []string

	tz := scan.NewTokenizer(dec, s.sep)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		if skipToken(tok, s) {
			continue
		}
		lines = append(lines, tok)
	}
}

// parseInts splits each retained token on whitespace and parses every
// field, failing on the first invalid literal.
func parseInts(path string, lines []string) ([]int, error) {
	nums := make([]int, 0, len(lines))
	for _, line := range lines {
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ParseError{Path: path, Token: field, cause: err}
			}
			nums = append(nums, n)
		}
	}
	return nums, nil
}

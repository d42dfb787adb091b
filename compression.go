package filekit

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the decompression applied to a file's byte stream
// before tokenization. It is read-side only; Append never compresses.
type Compression uint8

const (
	// CompressionAuto detects the codec from the path extension
	// (.gz/.gzip, .zst/.zstd, .lz4). Unknown extensions read raw bytes.
	CompressionAuto Compression = iota
	// CompressionNone reads raw bytes.
	CompressionNone
	// CompressionGzip reads a gzip stream.
	CompressionGzip
	// CompressionZstd reads a zstandard stream.
	CompressionZstd
	// CompressionLZ4 reads an LZ4 frame stream.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// detectCompression resolves CompressionAuto from the path extension.
// An empty path (reader inputs) resolves to CompressionNone.
func detectCompression(path string, c Compression) Compression {
	if c != CompressionAuto {
		return c
	}
	switch filepath.Ext(path) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// newDecompressor wraps r with the reader for c. The returned closer
// releases codec state only; it never closes r.
func newDecompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionAuto, CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionZstd:
		// Single decode goroutine keeps reads synchronous.
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unknown compression: %s", c)
	}
}
